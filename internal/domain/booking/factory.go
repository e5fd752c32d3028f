package booking

import (
	"time"

	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// HotelSpec is the slice of hotel state the booking rules need: identity and
// the per-night rate snapshotted into the booking at creation time.
type HotelSpec struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// CreateBooking validates a booking request and builds the booking on
// success. All rule violations are accumulated into a single
// ValidationError keyed by field name; none short-circuits the others.
// A nil date means transport decoding could not parse it: it is reported
// under its own field, and only the rules that need that value are skipped.
//
// hotel is nil when the lookup found no active hotel for the requested ID.
// reference must already be collision-checked by the caller.
func (f *Factory) CreateBooking(
	hotel *HotelSpec,
	userID uuid.UUID,
	req Request,
	reference string,
) (*Booking, error) {
	verr := NewValidationError()

	if hotel == nil {
		verr.Add(FieldHotel, MsgHotelNotFound)
	}

	today := f.clock.Today()
	var checkIn, checkOut time.Time

	if req.CheckIn == nil {
		verr.Add(FieldCheckIn, MsgInvalidDate)
	} else {
		checkIn = clock.Midnight(*req.CheckIn)
		if checkIn.Before(today) {
			verr.Add(FieldCheckIn, MsgCheckInPast)
		}
	}
	if req.CheckOut == nil {
		verr.Add(FieldCheckOut, MsgInvalidDate)
	} else {
		checkOut = clock.Midnight(*req.CheckOut)
		if req.CheckIn != nil && !checkOut.After(checkIn) {
			verr.Add(FieldCheckOut, MsgCheckOutOrder)
		}
	}
	if req.Guests <= 0 {
		verr.Add(FieldGuests, MsgGuestsPositive)
	}

	if verr.HasErrors() {
		return nil, verr
	}

	stay := ReconstructStayRange(checkIn, checkOut)
	nights := stay.Nights()
	now := f.clock.Now()

	return &Booking{
		id:        uuid.New(),
		reference: reference,
		hotelID:   hotel.ID,
		userID:    userID,
		stay:      stay,
		guests:    req.Guests,
		nights:    nights,
		total:     NewMoney(hotel.PricePerNightCents).MulNights(nights),
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Request carries the raw booking request fields after transport-level
// decoding. Dates may carry a time-of-day component; the factory normalizes
// them to calendar dates. A nil date marks a value the transport could not
// parse.
type Request struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
}
