//go:build unit

package request_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToDomain(t *testing.T) {
	t.Parallel()

	valid := request.CreateBookingRequest{
		CheckIn:  "2024-01-15",
		CheckOut: "2024-01-20",
		Guests:   2,
	}

	t.Run("parses ISO dates", func(t *testing.T) {
		t.Parallel()
		req := valid.ToDomain()
		require.NotNil(t, req.CheckIn)
		require.NotNil(t, req.CheckOut)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *req.CheckIn)
		assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), *req.CheckOut)
		assert.Equal(t, 2, req.Guests)
	})

	t.Run("non ISO formats map to nil per field", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			name         string
			mutate       func(*request.CreateBookingRequest)
			wantCheckIn  bool
			wantCheckOut bool
		}{
			{
				name:         "slash separated check-in",
				mutate:       func(r *request.CreateBookingRequest) { r.CheckIn = "15/01/2024" },
				wantCheckOut: true,
			},
			{
				name:        "textual check-out",
				mutate:      func(r *request.CreateBookingRequest) { r.CheckOut = "Jan 20 2024" },
				wantCheckIn: true,
			},
			{
				name: "both dates malformed",
				mutate: func(r *request.CreateBookingRequest) {
					r.CheckIn = "not-a-date"
					r.CheckOut = "also-not"
				},
			},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				req := valid
				tc.mutate(&req)

				domainReq := req.ToDomain()
				assert.Equal(t, tc.wantCheckIn, domainReq.CheckIn != nil)
				assert.Equal(t, tc.wantCheckOut, domainReq.CheckOut != nil)
				assert.Equal(t, req.Guests, domainReq.Guests)
			})
		}
	})
}

func TestListBookingsRequest_ToFilter(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	t.Run("leading dash means descending", func(t *testing.T) {
		t.Parallel()
		filter, err := request.ListBookingsRequest{Ordering: "-created_at"}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, "created_at", filter.Sort)
		assert.True(t, filter.SortDescending)
	})

	t.Run("plain ordering is ascending", func(t *testing.T) {
		t.Parallel()
		filter, err := request.ListBookingsRequest{Ordering: "check_in"}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, "check_in", filter.Sort)
		assert.False(t, filter.SortDescending)
	})

	t.Run("date bounds are parsed", func(t *testing.T) {
		t.Parallel()
		filter, err := request.ListBookingsRequest{
			Status:      strPtr("confirmed"),
			CheckInFrom: strPtr("2024-01-01"),
			CheckInTo:   strPtr("2024-02-01"),
		}.ToFilter()
		require.NoError(t, err)
		require.NotNil(t, filter.Status)
		assert.Equal(t, "confirmed", *filter.Status)
		require.NotNil(t, filter.CheckInFrom)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.CheckInFrom)
		require.NotNil(t, filter.CheckInTo)
		assert.Nil(t, filter.CreatedFrom)
	})

	t.Run("empty bound strings are ignored", func(t *testing.T) {
		t.Parallel()
		filter, err := request.ListBookingsRequest{CheckInFrom: strPtr("")}.ToFilter()
		require.NoError(t, err)
		assert.Nil(t, filter.CheckInFrom)
	})

	t.Run("malformed bounds are reported per parameter", func(t *testing.T) {
		t.Parallel()
		_, err := request.ListBookingsRequest{
			CheckInFrom: strPtr("01-15-2024"),
			CreatedTo:   strPtr("yesterday"),
		}.ToFilter()

		verr := booking.AsValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, []string{"check_in_from", "created_to"}, verr.FieldOrder())
		assert.Equal(t, []string{booking.MsgInvalidDate}, verr.Fields()["check_in_from"])
	})
}
