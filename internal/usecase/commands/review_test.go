//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/builder"
	commandsmock "hotel-booking-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewCommandsFixture struct {
	reviewRepo  *commandsmock.MockReviewRepository
	bookingRepo *commandsmock.MockBookingRepository
	hotelRepo   *commandsmock.MockHotelRepository
	commands    commands.ReviewCommands
}

func newReviewCommandsFixture(t *testing.T) *reviewCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &reviewCommandsFixture{
		reviewRepo:  commandsmock.NewMockReviewRepository(ctrl),
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		hotelRepo:   commandsmock.NewMockHotelRepository(ctrl),
	}
	f.commands = commands.NewReviewCommands(f.reviewRepo, f.bookingRepo, f.hotelRepo, clock.NewMockClock(builder.FrozenNow))
	return f
}

// completedBooking pairs a review request with a completed stay it refers to.
func completedBooking(r *builder.ReviewBuilder) *booking.Booking {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.ID = r.BookingID
			b.UserID = r.UserID
			b.HotelID = r.HotelID
		}).
		AsFinishedStay().
		WithStatus(booking.StatusCompleted).
		BuildEntity()
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(completedBooking(r), nil)
		f.reviewRepo.EXPECT().ExistsByBookingID(gomock.Any(), r.BookingID).Return(false, nil)
		f.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.hotelRepo.EXPECT().ApplyReview(gomock.Any(), r.HotelID, r.Rating, builder.FrozenNow).Return(nil)

		created, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, r.BookingID, created.BookingID())
		assert.Equal(t, r.HotelID, created.HotelID())
		assert.Equal(t, r.Rating, created.Rating().Value())
	})

	t.Run("booking not found", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(completedBooking(r), nil)

		_, err := f.commands.CreateReview(ctx, uuid.New(), r.BuildCreateRequestDTO())
		require.ErrorIs(t, err, commands.ErrBookingAccessDenied)
	})

	t.Run("only completed stays are reviewable", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled} {
			r := builder.NewReviewBuilder()
			f := newReviewCommandsFixture(t)

			notCompleted := builder.NewBookingBuilder().
				With(func(b *builder.BookingBuilder) {
					b.ID = r.BookingID
					b.UserID = r.UserID
				}).
				WithStatus(status).
				BuildEntity()
			f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(notCompleted, nil)

			_, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
			require.ErrorIs(t, err, review.ErrStayNotEligible)
		}
	})

	t.Run("one review per booking", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(completedBooking(r), nil)
		f.reviewRepo.EXPECT().ExistsByBookingID(gomock.Any(), r.BookingID).Return(true, nil)

		_, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
		require.ErrorIs(t, err, review.ErrReviewAlreadyExists)
	})

	t.Run("insert race maps the unique violation", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(completedBooking(r), nil)
		f.reviewRepo.EXPECT().ExistsByBookingID(gomock.Any(), r.BookingID).Return(false, nil)
		f.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
		require.ErrorIs(t, err, review.ErrReviewAlreadyExists)
	})

	t.Run("rating update failure does not lose the review", func(t *testing.T) {
		r := builder.NewReviewBuilder()
		f := newReviewCommandsFixture(t)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), r.BookingID).Return(completedBooking(r), nil)
		f.reviewRepo.EXPECT().ExistsByBookingID(gomock.Any(), r.BookingID).Return(false, nil)
		f.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.hotelRepo.EXPECT().ApplyReview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("write failed", nil))

		created, err := f.commands.CreateReview(ctx, r.UserID, r.BuildCreateRequestDTO())
		require.NoError(t, err)
		require.NotNil(t, created)
	})
}
