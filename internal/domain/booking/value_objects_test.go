//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayRange(t *testing.T) {
	today := date(2024, 1, 10)

	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewStayRange(date(2024, 1, 15), date(2024, 1, 20), today)
		require.NoError(t, err)
		assert.Equal(t, 5, r.Nights())
	})

	t.Run("one night minimum", func(t *testing.T) {
		r, err := booking.NewStayRange(date(2024, 1, 10), date(2024, 1, 11), today)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("check-in before today", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2024, 1, 9), date(2024, 1, 12), today)
		require.ErrorIs(t, err, booking.ErrCheckInPast)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2024, 1, 15), date(2024, 1, 15), today)
		require.ErrorIs(t, err, booking.ErrCheckOutNotAfter)
	})

	t.Run("has ended", func(t *testing.T) {
		r := booking.ReconstructStayRange(date(2024, 1, 2), date(2024, 1, 5))
		assert.True(t, r.HasEnded(today))

		// Check-out on the current day means the guest leaves today.
		sameDay := booking.ReconstructStayRange(date(2024, 1, 7), date(2024, 1, 10))
		assert.False(t, sameDay.HasEnded(today))
	})

	t.Run("reconstruct skips the past check", func(t *testing.T) {
		r := booking.ReconstructStayRange(date(2020, 6, 1), date(2020, 6, 4))
		assert.Equal(t, 3, r.Nights())
	})
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(15000)

	assert.Equal(t, int64(15000), m.Cents())
	assert.Equal(t, 150.00, m.Dollars())
	assert.Equal(t, int64(75000), m.MulNights(5).Cents())
	assert.Equal(t, int64(0), m.MulNights(0).Cents())
}

func TestStatus(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}

		_, err := booking.NewStatus("refunded")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("classification", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsActive())
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.False(t, booking.StatusCancelled.IsActive())
		assert.False(t, booking.StatusCompleted.IsActive())

		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.False(t, booking.StatusConfirmed.IsTerminal())
	})
}
