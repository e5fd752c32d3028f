package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	CityName      string            `json:"city_name"`
	Address       string            `json:"address"`
	Description   string            `json:"description"`
	PricePerNight string            `json:"price_per_night"`
	StarRating    int               `json:"star_rating"`
	GuestRating   float64           `json:"guest_rating"`
	TotalReviews  int               `json:"total_reviews"`
	IsFeatured    bool              `json:"is_featured"`
	Amenities     []AmenityResponse `json:"amenities"`
	CreatedAt     time.Time         `json:"created_at"`
}

type HotelListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	CityName      string    `json:"city_name"`
	PricePerNight string    `json:"price_per_night"`
	StarRating    int       `json:"star_rating"`
	GuestRating   float64   `json:"guest_rating"`
	TotalReviews  int       `json:"total_reviews"`
	IsFeatured    bool      `json:"is_featured"`
}

type CityResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Country string    `json:"country"`
}

type AmenityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

func FromHotelView(rm *queries.HotelView) *HotelResponse {
	amenities := make([]AmenityResponse, len(rm.Amenities))
	for i, a := range rm.Amenities {
		amenities[i] = AmenityResponse{ID: a.ID, Name: a.Name, Icon: a.Icon}
	}

	return &HotelResponse{
		ID:            rm.ID,
		Name:          rm.Name,
		Slug:          rm.Slug,
		CityName:      rm.CityName,
		Address:       rm.Address,
		Description:   rm.Description,
		PricePerNight: formatAmount(rm.PricePerNightCents),
		StarRating:    rm.StarRating,
		GuestRating:   rm.GuestRating,
		TotalReviews:  rm.TotalReviews,
		IsFeatured:    rm.IsFeatured,
		Amenities:     amenities,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromHotelList(items []*queries.HotelListItem) []*HotelListItemResponse {
	result := make([]*HotelListItemResponse, len(items))
	for i, item := range items {
		result[i] = &HotelListItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Slug:          item.Slug,
			CityName:      item.CityName,
			PricePerNight: formatAmount(item.PricePerNightCents),
			StarRating:    item.StarRating,
			GuestRating:   item.GuestRating,
			TotalReviews:  item.TotalReviews,
			IsFeatured:    item.IsFeatured,
		}
	}
	return result
}

func FromCityList(items []*queries.CityView) []*CityResponse {
	result := make([]*CityResponse, len(items))
	for i, item := range items {
		result[i] = &CityResponse{
			ID:      item.ID,
			Name:    item.Name,
			Slug:    item.Slug,
			Country: item.Country,
		}
	}
	return result
}

func FromAmenityList(items []*queries.AmenityView) []*AmenityResponse {
	result := make([]*AmenityResponse, len(items))
	for i, item := range items {
		result[i] = &AmenityResponse{ID: item.ID, Name: item.Name, Icon: item.Icon}
	}
	return result
}
