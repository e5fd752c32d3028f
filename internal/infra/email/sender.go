package email

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-booking-api/internal/infra/event"
)

// Sender delivers booking notification emails. The log implementation
// stands in for a real provider in development.
type Sender interface {
	Send(ctx context.Context, ev event.BookingEvent) error
}

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, ev event.BookingEvent) error {
	if ev.Type == event.TypeUserRegistered {
		s.logger.Info("sending welcome email",
			slog.String("to", ev.UserEmail),
			slog.String("subject", Subject(ev)),
		)
		return nil
	}

	s.logger.Info("sending booking email",
		slog.String("type", ev.Type),
		slog.String("to", ev.UserEmail),
		slog.String("subject", Subject(ev)),
		slog.String("booking_id", ev.BookingRef),
		slog.String("hotel", ev.HotelName),
	)

	if ev.OwnerEmail != "" && ev.Type == event.TypeBookingConfirmed {
		s.logger.Info("notifying hotel owner of new booking",
			slog.String("to", ev.OwnerEmail),
			slog.String("booking_id", ev.BookingRef),
		)
	}

	return nil
}

// Subject builds the message subject line for an event type.
func Subject(ev event.BookingEvent) string {
	switch ev.Type {
	case event.TypeBookingConfirmed:
		return fmt.Sprintf("Booking confirmed: %s (%s)", ev.HotelName, ev.BookingRef)
	case event.TypeBookingCancelled:
		return fmt.Sprintf("Booking cancelled: %s (%s)", ev.HotelName, ev.BookingRef)
	case event.TypeBookingCompleted:
		return fmt.Sprintf("Thanks for staying at %s", ev.HotelName)
	case event.TypeUserRegistered:
		return "Welcome to Hotel Booking!"
	default:
		return fmt.Sprintf("Booking update: %s", ev.BookingRef)
	}
}
