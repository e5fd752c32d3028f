//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCancel(t *testing.T) {
	now := builder.FrozenNow.Add(time.Hour)

	t.Run("confirmed booking can be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildEntity()

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("pending booking can be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildEntity()

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancelling twice is an error", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildEntity()

		require.NoError(t, b.Cancel(now))
		err := b.Cancel(now.Add(time.Minute))
		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildEntity()

		err := b.Cancel(now)
		require.ErrorIs(t, err, booking.ErrAlreadyCompleted)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})
}

func TestBookingComplete(t *testing.T) {
	now := builder.FrozenNow

	t.Run("confirmed booking with a past check-out completes", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsFinishedStay().BuildEntity()

		require.NoError(t, b.Complete(now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("check-out on the current day is not yet finished", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStay(
				time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			).
			BuildEntity()

		err := b.Complete(now)
		require.ErrorIs(t, err, booking.ErrNotCompletable)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("future stay cannot complete", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildEntity()

		require.ErrorIs(t, b.Complete(now), booking.ErrNotCompletable)
	})

	t.Run("only confirmed bookings complete", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().AsFinishedStay().WithStatus(status).BuildEntity()

			require.ErrorIs(t, b.Complete(now), booking.ErrNotCompletable)
			assert.Equal(t, status, b.Status())
		}
	})
}

func TestBookingOwnership(t *testing.T) {
	owner := uuid.New()
	b := builder.NewBookingBuilder().WithUserID(owner).BuildEntity()

	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}
