package booking

import (
	"errors"
	"time"

	"hotel-booking-api/internal/pkg/clock"
)

var (
	ErrCheckInPast       = errors.New("check-in date is in the past")
	ErrCheckOutNotAfter  = errors.New("check-out date is not after check-in date")
	ErrNonPositiveGuests = errors.New("guest count must be positive")
)

// StayRange is a calendar date range with no time-of-day component.
// Both ends are normalized to midnight UTC.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange validates check_out > check_in and check_in >= today.
func NewStayRange(checkIn, checkOut, today time.Time) (StayRange, error) {
	r := StayRange{
		checkIn:  clock.Midnight(checkIn),
		checkOut: clock.Midnight(checkOut),
	}

	if r.checkIn.Before(clock.Midnight(today)) {
		return StayRange{}, ErrCheckInPast
	}
	if !r.checkOut.After(r.checkIn) {
		return StayRange{}, ErrCheckOutNotAfter
	}

	return r, nil
}

// ReconstructStayRange rebuilds a range from storage without re-applying
// the creation-time "not in the past" rule.
func ReconstructStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{
		checkIn:  clock.Midnight(checkIn),
		checkOut: clock.Midnight(checkOut),
	}
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

// Nights is the stay length in whole days.
func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// HasEnded reports whether the stay's check-out date has passed.
func (r StayRange) HasEnded(today time.Time) bool {
	return r.checkOut.Before(clock.Midnight(today))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}
