package request

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	HotelID  uuid.UUID `json:"hotel_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
	Guests   int       `json:"guests"`
}

// ToDomain parses the date strings. Unparseable dates map to nil so the
// factory reports them alongside the remaining rule violations instead of
// cutting validation short.
func (r CreateBookingRequest) ToDomain() booking.Request {
	req := booking.Request{Guests: r.Guests}

	if t, err := time.Parse(dateLayout, r.CheckIn); err == nil {
		req.CheckIn = &t
	}
	if t, err := time.Parse(dateLayout, r.CheckOut); err == nil {
		req.CheckOut = &t
	}

	return req
}

type ListBookingsRequest struct {
	Status       *string `form:"status"`
	CheckInFrom  *string `form:"check_in_from"`
	CheckInTo    *string `form:"check_in_to"`
	CheckOutFrom *string `form:"check_out_from"`
	CheckOutTo   *string `form:"check_out_to"`
	CreatedFrom  *string `form:"created_from"`
	CreatedTo    *string `form:"created_to"`
	Ordering     string  `form:"ordering"`
	Limit        int32   `form:"limit"`
	Offset       int32   `form:"offset"`
}

// ToFilter converts query parameters into a read-side filter. An ordering
// value with a leading "-" sorts descending, e.g. "-created_at".
func (r ListBookingsRequest) ToFilter() (queries.BookingFilter, error) {
	filter := queries.BookingFilter{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	ordering := r.Ordering
	if len(ordering) > 0 && ordering[0] == '-' {
		filter.SortDescending = true
		ordering = ordering[1:]
	}
	filter.Sort = ordering

	verr := booking.NewValidationError()
	parse := func(raw *string, field string) *time.Time {
		if raw == nil || *raw == "" {
			return nil
		}
		t, err := time.Parse(dateLayout, *raw)
		if err != nil {
			verr.Add(field, booking.MsgInvalidDate)
			return nil
		}
		return &t
	}

	filter.CheckInFrom = parse(r.CheckInFrom, "check_in_from")
	filter.CheckInTo = parse(r.CheckInTo, "check_in_to")
	filter.CheckOutFrom = parse(r.CheckOutFrom, "check_out_from")
	filter.CheckOutTo = parse(r.CheckOutTo, "check_out_to")
	filter.CreatedFrom = parse(r.CreatedFrom, "created_from")
	filter.CreatedTo = parse(r.CreatedTo, "created_to")

	if verr.HasErrors() {
		return queries.BookingFilter{}, verr
	}

	return filter, nil
}
