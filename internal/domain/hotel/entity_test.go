//go:build unit

package hotel_test

import (
	"testing"

	"hotel-booking-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	cityID := uuid.New()
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		h, err := hotel.NewHotel("Grand Palace Hotel", "grand-palace-hotel", cityID, "1 Rue de Rivoli", "Historic palace", 15000, 5, ownerID)
		require.NoError(t, err)
		require.NotNil(t, h)

		assert.NotEqual(t, uuid.Nil, h.ID())
		assert.True(t, h.IsActive())
		assert.False(t, h.IsFeatured())
		assert.Equal(t, int64(15000), h.PricePerNightCents())
		assert.Equal(t, 0.0, h.GuestRating())
		assert.Equal(t, 0, h.TotalReviews())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			build func() (*hotel.Hotel, error)
			errIs error
		}{
			{
				name: "empty name",
				build: func() (*hotel.Hotel, error) {
					return hotel.NewHotel("", "slug", cityID, "", "", 15000, 3, ownerID)
				},
				errIs: hotel.ErrEmptyName,
			},
			{
				name: "star rating below range",
				build: func() (*hotel.Hotel, error) {
					return hotel.NewHotel("Hotel", "slug", cityID, "", "", 15000, 0, ownerID)
				},
				errIs: hotel.ErrInvalidStarRating,
			},
			{
				name: "star rating above range",
				build: func() (*hotel.Hotel, error) {
					return hotel.NewHotel("Hotel", "slug", cityID, "", "", 15000, 6, ownerID)
				},
				errIs: hotel.ErrInvalidStarRating,
			},
			{
				name: "negative price",
				build: func() (*hotel.Hotel, error) {
					return hotel.NewHotel("Hotel", "slug", cityID, "", "", -1, 3, ownerID)
				},
				errIs: hotel.ErrNegativePrice,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				h, err := c.build()
				require.Nil(t, h)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("free stays are allowed", func(t *testing.T) {
		h, err := hotel.NewHotel("Hostel", "hostel", cityID, "", "", 0, 1, ownerID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), h.PricePerNightCents())
	})
}
