//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID                 uuid.UUID
	Name               string
	Slug               string
	CityID             uuid.UUID
	CityName           string
	Address            string
	Description        string
	PricePerNightCents int64
	StarRating         int
	GuestRating        float64
	TotalReviews       int
	IsFeatured         bool
	Amenities          []queries.AmenityView
	CreatedAt          time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:                 uuid.New(),
		Name:               "Grand Palace Hotel",
		Slug:               "grand-palace-hotel",
		CityID:             uuid.New(),
		CityName:           "Paris",
		Address:            "1 Rue de Rivoli",
		Description:        "A stately hotel facing the Tuileries.",
		PricePerNightCents: 15000,
		StarRating:         5,
		GuestRating:        4.6,
		TotalReviews:       12,
		IsFeatured:         true,
		CreatedAt:          FrozenNow,
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

// Build methods
func (h *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:                 h.ID,
		Name:               h.Name,
		Slug:               h.Slug,
		CityID:             h.CityID,
		CityName:           h.CityName,
		Address:            h.Address,
		Description:        h.Description,
		PricePerNightCents: h.PricePerNightCents,
		StarRating:         h.StarRating,
		GuestRating:        h.GuestRating,
		TotalReviews:       h.TotalReviews,
		IsFeatured:         h.IsFeatured,
		Amenities:          h.Amenities,
		CreatedAt:          h.CreatedAt,
	}
}

func (h *HotelBuilder) BuildListItem() *queries.HotelListItem {
	return &queries.HotelListItem{
		ID:                 h.ID,
		Name:               h.Name,
		Slug:               h.Slug,
		CityName:           h.CityName,
		PricePerNightCents: h.PricePerNightCents,
		StarRating:         h.StarRating,
		GuestRating:        h.GuestRating,
		TotalReviews:       h.TotalReviews,
		IsFeatured:         h.IsFeatured,
	}
}

// Fluent builder methods
func (h *HotelBuilder) WithSlug(slug string) *HotelBuilder {
	h.Slug = slug
	return h
}

func (h *HotelBuilder) WithPriceCents(cents int64) *HotelBuilder {
	h.PricePerNightCents = cents
	return h
}

func (h *HotelBuilder) WithAmenities(amenities ...queries.AmenityView) *HotelBuilder {
	h.Amenities = amenities
	return h
}
