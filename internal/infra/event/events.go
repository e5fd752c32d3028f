package event

import "time"

const (
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingCancelled = "booking_cancelled"
	TypeBookingCompleted = "booking_completed"
	TypeUserRegistered   = "user_registered"
)

// BookingEvent is the message published for every booking lifecycle
// transition. The notification worker consumes it to send emails.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingRef string    `json:"booking_id"`
	HotelName  string    `json:"hotel_name"`
	UserEmail  string    `json:"user_email"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UserEvent is published when an account is created. It shares the booking
// events topic; the "type" and "user_email" keys line up with BookingEvent
// so the worker's decoder handles both shapes.
type UserEvent struct {
	Type       string    `json:"type"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name,omitempty"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
