package response

import (
	"time"

	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	BookingID uuid.UUID `json:"booking_id,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReviewEntity(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID(),
		HotelID:   r.HotelID(),
		BookingID: r.BookingID(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(items))
	for i, item := range items {
		result[i] = &ReviewResponse{
			ID:        item.ID,
			HotelID:   item.HotelID,
			UserName:  item.UserName,
			Rating:    item.Rating,
			Comment:   item.Comment,
			CreatedAt: item.CreatedAt,
		}
	}
	return result
}
