//go:build unit

package email_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hotel-booking-api/internal/infra/email"
	"hotel-booking-api/internal/infra/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	t.Parallel()

	ev := event.BookingEvent{
		BookingRef: "A1B2C3D4",
		HotelName:  "Grand Palace Hotel",
	}

	testCases := []struct {
		name      string
		eventType string
		want      string
	}{
		{name: "confirmed", eventType: event.TypeBookingConfirmed, want: "Booking confirmed: Grand Palace Hotel (A1B2C3D4)"},
		{name: "cancelled", eventType: event.TypeBookingCancelled, want: "Booking cancelled: Grand Palace Hotel (A1B2C3D4)"},
		{name: "completed", eventType: event.TypeBookingCompleted, want: "Thanks for staying at Grand Palace Hotel"},
		{name: "welcome", eventType: event.TypeUserRegistered, want: "Welcome to Hotel Booking!"},
		{name: "unknown type falls back", eventType: "booking_reminder", want: "Booking update: A1B2C3D4"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ev := ev
			ev.Type = tc.eventType
			assert.Equal(t, tc.want, email.Subject(ev))
		})
	}
}

func TestLogSenderSend(t *testing.T) {
	t.Parallel()

	sender := email.NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("booking events deliver without error", func(t *testing.T) {
		t.Parallel()
		err := sender.Send(context.Background(), event.BookingEvent{
			Type:       event.TypeBookingConfirmed,
			BookingRef: "A1B2C3D4",
			UserEmail:  "guest@example.com",
			OwnerEmail: "owner@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("welcome events deliver without error", func(t *testing.T) {
		t.Parallel()
		err := sender.Send(context.Background(), event.BookingEvent{
			Type:      event.TypeUserRegistered,
			UserEmail: "new-user@example.com",
		})
		require.NoError(t, err)
	})
}
