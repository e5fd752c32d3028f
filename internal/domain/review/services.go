package review

import (
	"time"

	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	Now       time.Time
}

// EligibilityChecker decides whether a stay can be reviewed. Only the
// booking's owner may review, and only after the booking is completed.
type EligibilityChecker interface {
	CanPostReview(input EligibilityInput) error
}
