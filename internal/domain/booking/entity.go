package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking links a requester to a hotel for a date range. Every field except
// status is immutable after creation; status only moves forward through the
// transitions below. Bookings are never deleted, only status-transitioned.
type Booking struct {
	id        uuid.UUID
	reference string
	hotelID   uuid.UUID
	userID    uuid.UUID
	stay      StayRange
	guests    int
	nights    int
	total     Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	hotelID, userID uuid.UUID,
	stay StayRange,
	guests int,
	total Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		reference: reference,
		hotelID:   hotelID,
		userID:    userID,
		stay:      stay,
		guests:    guests,
		nights:    stay.Nights(),
		total:     total,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Reference() string    { return b.reference }
func (b *Booking) HotelID() uuid.UUID   { return b.hotelID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) Guests() int          { return b.guests }
func (b *Booking) Nights() int          { return b.nights }
func (b *Booking) Total() Money         { return b.total }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking is a reported error, not a silent no-op.
func (b *Booking) Cancel(now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}

	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// Complete marks a confirmed booking whose stay has ended as completed.
// Driven by the periodic sweep, not by user action.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotCompletable
	}
	if !b.stay.HasEnded(now) {
		return ErrNotCompletable
	}

	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}
