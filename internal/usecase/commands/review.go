package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/review"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewCommands interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req reqdto.CreateReviewRequest) (*review.Review, error)
}

type reviewCommandsImpl struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	hotelRepo   HotelRepository
	clock       clock.Clock
}

func NewReviewCommands(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	hotelRepo HotelRepository,
	clock clock.Clock,
) ReviewCommands {
	return &reviewCommandsImpl{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		clock:       clock,
	}
}

// CreateReview posts a review for a completed stay. The reviewer must own
// the booking, the stay must be completed, and each booking carries at most
// one review.
func (c *reviewCommandsImpl) CreateReview(ctx context.Context, userID uuid.UUID, req reqdto.CreateReviewRequest) (*review.Review, error) {
	bookingEntity, err := c.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !bookingEntity.IsOwnedBy(userID) {
		return nil, ErrBookingAccessDenied
	}
	if bookingEntity.Status() != booking.StatusCompleted {
		return nil, review.ErrStayNotEligible
	}

	exists, err := c.reviewRepo.ExistsByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, review.ErrReviewAlreadyExists
	}

	reviewEntity, err := review.NewReview(
		uuid.Nil, userID, bookingEntity.HotelID(), req.BookingID,
		req.Rating, req.Comment, c.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := c.reviewRepo.Create(ctx, reviewEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, review.ErrReviewAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The aggregate rating is denormalized onto the hotel row. A failed
	// update leaves it stale until the next review lands.
	if err := c.hotelRepo.ApplyReview(ctx, bookingEntity.HotelID(), req.Rating, c.clock.Now()); err != nil {
		slog.Warn("failed to refresh hotel rating", "hotel_id", bookingEntity.HotelID(), "error", err.Error())
	}

	return reviewEntity, nil
}
