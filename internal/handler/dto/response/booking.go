package response

import (
	"fmt"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   string    `json:"booking_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	CityName    string    `json:"city_name"`
	UserEmail   string    `json:"user_email"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Guests      int       `json:"guests"`
	Nights      int       `json:"nights"`
	TotalAmount string    `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   string    `json:"booking_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Guests      int       `json:"guests"`
	Nights      int       `json:"nights"`
	TotalAmount string    `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          rm.ID,
		BookingID:   rm.Reference,
		HotelID:     rm.HotelID,
		HotelName:   rm.HotelName,
		CityName:    rm.CityName,
		UserEmail:   rm.UserEmail,
		CheckIn:     rm.CheckIn.Format(dateLayout),
		CheckOut:    rm.CheckOut.Format(dateLayout),
		Guests:      rm.Guests,
		Nights:      rm.Nights,
		TotalAmount: formatAmount(rm.TotalCents),
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          rm.ID,
		BookingID:   rm.Reference,
		HotelID:     rm.HotelID,
		HotelName:   rm.HotelName,
		CheckIn:     rm.CheckIn.Format(dateLayout),
		CheckOut:    rm.CheckOut.Format(dateLayout),
		Guests:      rm.Guests,
		Nights:      rm.Nights,
		TotalAmount: formatAmount(rm.TotalCents),
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		result[i] = FromBookingListItem(item)
	}
	return result
}

// formatAmount renders cents as a decimal string, "15000" -> "150.00".
func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
