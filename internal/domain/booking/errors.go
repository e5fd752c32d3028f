package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCompleted = errors.New("booking is already completed")
	ErrNotCompletable   = errors.New("booking cannot be completed")
)

// Field names used in validation errors. They match the request payload
// field names so the handler layer can echo them back verbatim.
const (
	FieldHotel    = "hotel"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldGuests   = "guests"
)

// Validation messages surfaced to API clients.
const (
	MsgHotelNotFound  = "Hotel does not exist or is not active."
	MsgCheckInPast    = "Check-in date cannot be in the past."
	MsgCheckOutOrder  = "Check-out date must be after check-in date."
	MsgGuestsPositive = "Number of guests must be greater than 0."
	MsgInvalidDate    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
)

// ValidationError accumulates field-keyed messages. All violations are
// collected and reported together; nothing short-circuits on the first
// failure. Field order follows insertion order.
type ValidationError struct {
	fields map[string][]string
	order  []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func AsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	return nil
}

func (e *ValidationError) Add(field, msg string) {
	if _, seen := e.fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the accumulated field→messages mapping.
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// FieldOrder returns field names in the order they were first recorded.
func (e *ValidationError) FieldOrder() []string {
	return e.order
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, field := range e.order {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
