package commands

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra/event"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	CompleteFinishedStays(ctx context.Context, today, now time.Time) ([]uuid.UUID, error)
}

type HotelRepository interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	ApplyReview(ctx context.Context, hotelID uuid.UUID, rating int, now time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User, now time.Time) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

// EventPublisher pushes lifecycle events onto the message bus for the
// notification worker. Publishing is best-effort; a failed publish never
// rolls back the change it describes.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev event.BookingEvent) error
	PublishUserEvent(ctx context.Context, ev event.UserEvent) error
}
