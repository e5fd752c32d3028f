package hotel

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStarRating = errors.New("star rating must be between 1 and 5")
	ErrNegativePrice     = errors.New("price per night cannot be negative")
	ErrEmptyName         = errors.New("hotel name is required")
)

// Hotel is a bookable property. price per night is stored in cents; the rate
// in effect at booking time is snapshotted into the booking and never
// recomputed from here.
type Hotel struct {
	id                 uuid.UUID
	name               string
	slug               string
	cityID             uuid.UUID
	address            string
	description        string
	pricePerNightCents int64
	starRating         int
	guestRating        float64
	totalReviews       int
	ownerID            uuid.UUID
	isActive           bool
	isFeatured         bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewHotel(
	name, slug string,
	cityID uuid.UUID,
	address, description string,
	pricePerNightCents int64,
	starRating int,
	ownerID uuid.UUID,
) (*Hotel, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if starRating < 1 || starRating > 5 {
		return nil, ErrInvalidStarRating
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Hotel{
		id:                 uuid.New(),
		name:               name,
		slug:               slug,
		cityID:             cityID,
		address:            address,
		description:        description,
		pricePerNightCents: pricePerNightCents,
		starRating:         starRating,
		ownerID:            ownerID,
		isActive:           true,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, slug string,
	cityID uuid.UUID,
	address, description string,
	pricePerNightCents int64,
	starRating int,
	guestRating float64,
	totalReviews int,
	ownerID uuid.UUID,
	isActive, isFeatured bool,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:                 id,
		name:               name,
		slug:               slug,
		cityID:             cityID,
		address:            address,
		description:        description,
		pricePerNightCents: pricePerNightCents,
		starRating:         starRating,
		guestRating:        guestRating,
		totalReviews:       totalReviews,
		ownerID:            ownerID,
		isActive:           isActive,
		isFeatured:         isFeatured,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID              { return h.id }
func (h *Hotel) Name() string               { return h.name }
func (h *Hotel) Slug() string               { return h.slug }
func (h *Hotel) CityID() uuid.UUID          { return h.cityID }
func (h *Hotel) Address() string            { return h.address }
func (h *Hotel) Description() string        { return h.description }
func (h *Hotel) PricePerNightCents() int64  { return h.pricePerNightCents }
func (h *Hotel) StarRating() int            { return h.starRating }
func (h *Hotel) GuestRating() float64       { return h.guestRating }
func (h *Hotel) TotalReviews() int          { return h.totalReviews }
func (h *Hotel) OwnerID() uuid.UUID         { return h.ownerID }
func (h *Hotel) IsActive() bool             { return h.isActive }
func (h *Hotel) IsFeatured() bool           { return h.isFeatured }
func (h *Hotel) CreatedAt() time.Time       { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time       { return h.updatedAt }
