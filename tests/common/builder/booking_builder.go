//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// FrozenNow is the instant booking tests run at unless they say otherwise.
var FrozenNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID         uuid.UUID
	Reference  string
	HotelID    uuid.UUID
	HotelName  string
	CityName   string
	UserID     uuid.UUID
	UserEmail  string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	PriceCents int64
	Status     dombooking.Status
	Now        time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		Reference:  "A1B2C3D4",
		HotelID:    uuid.New(),
		HotelName:  "Grand Palace Hotel",
		CityName:   "Paris",
		UserID:     uuid.New(),
		UserEmail:  "guest@example.com",
		CheckIn:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		PriceCents: 15000,
		Status:     dombooking.StatusConfirmed,
		Now:        FrozenNow,
		CreatedAt:  FrozenNow,
		UpdatedAt:  FrozenNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

func (b *BookingBuilder) TotalCents() int64 {
	return b.PriceCents * int64(b.Nights())
}

// Build methods
func (b *BookingBuilder) BuildHotelSpec() *dombooking.HotelSpec {
	return &dombooking.HotelSpec{
		ID:                 b.HotelID,
		Name:               b.HotelName,
		PricePerNightCents: b.PriceCents,
	}
}

func (b *BookingBuilder) BuildDomainRequest() dombooking.Request {
	return dombooking.Request{
		CheckIn:  &b.CheckIn,
		CheckOut: &b.CheckOut,
		Guests:   b.Guests,
	}
}

// BuildDomain runs the factory at the builder's frozen clock.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	factory := dombooking.NewFactory(clock.NewMockClock(b.Now))
	return factory.CreateBooking(b.BuildHotelSpec(), b.UserID, b.BuildDomainRequest(), b.Reference)
}

// BuildEntity reconstructs a persisted booking, bypassing creation rules.
func (b *BookingBuilder) BuildEntity() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID,
		b.Reference,
		b.HotelID,
		b.UserID,
		dombooking.ReconstructStayRange(b.CheckIn, b.CheckOut),
		b.Guests,
		dombooking.NewMoney(b.TotalCents()),
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:  b.HotelID,
		CheckIn:  b.CheckIn.Format(dateLayout),
		CheckOut: b.CheckOut.Format(dateLayout),
		Guests:   b.Guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		Reference:  b.Reference,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		CityName:   b.CityName,
		UserID:     b.UserID,
		UserEmail:  b.UserEmail,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		Nights:     b.Nights(),
		TotalCents: b.TotalCents(),
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		Reference:  b.Reference,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		Nights:     b.Nights(),
		TotalCents: b.TotalCents(),
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithHotelID(hotelID uuid.UUID) *BookingBuilder {
	b.HotelID = hotelID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.Guests = guests
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.PriceCents = cents
	return b
}

// AsFinishedStay places the whole stay before the frozen clock so the
// completion sweep would pick it up.
func (b *BookingBuilder) AsFinishedStay() *BookingBuilder {
	b.CheckIn = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	b.CheckOut = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	return b
}
