package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"booking_id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	CityName   string    `json:"city_name"`
	UserID     uuid.UUID `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"booking_id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingFilter narrows a booking listing. Nil fields are ignored.
type BookingFilter struct {
	Status         *string
	CheckInFrom    *time.Time
	CheckInTo      *time.Time
	CheckOutFrom   *time.Time
	CheckOutTo     *time.Time
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	Sort           string
	SortDescending bool
	Limit          int32
	Offset         int32
}

type HotelView struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	CityID             uuid.UUID     `json:"city_id"`
	CityName           string        `json:"city_name"`
	Address            string        `json:"address"`
	Description        string        `json:"description"`
	PricePerNightCents int64         `json:"price_per_night_cents"`
	StarRating         int           `json:"star_rating"`
	GuestRating        float64       `json:"guest_rating"`
	TotalReviews       int           `json:"total_reviews"`
	IsFeatured         bool          `json:"is_featured"`
	Amenities          []AmenityView `json:"amenities"`
	CreatedAt          time.Time     `json:"created_at"`
}

type HotelListItem struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	CityName           string    `json:"city_name"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	StarRating         int       `json:"star_rating"`
	GuestRating        float64   `json:"guest_rating"`
	TotalReviews       int       `json:"total_reviews"`
	IsFeatured         bool      `json:"is_featured"`
}

// HotelFilter narrows a hotel search. Nil fields are ignored.
type HotelFilter struct {
	CitySlug       *string
	MinStarRating  *int
	MaxPriceCents  *int64
	Search         *string
	Sort           string
	SortDescending bool
	Limit          int32
	Offset         int32
}

type CityView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Country string    `json:"country"`
}

type AmenityView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
