package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/event"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/refcode"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAccessDenied     = errs.New("booking access denied")
	ErrReferenceExhausted      = errs.New("could not allocate a unique booking reference")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// referenceAttempts bounds the reference collision retry loop.
const referenceAttempts = 5

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*queries.BookingView, error)
	CompleteFinishedStays(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	hotelRepo      HotelRepository
	userRepo       UserRepository
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
	refGenerator   refcode.Generator
	publisher      EventPublisher
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	hotelRepo HotelRepository,
	userRepo UserRepository,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	refGenerator refcode.Generator,
	publisher EventPublisher,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		hotelRepo:      hotelRepo,
		userRepo:       userRepo,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
		refGenerator:   refGenerator,
		publisher:      publisher,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	domainReq := req.ToDomain()

	hotelEntity, err := c.findHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	var spec *booking.HotelSpec
	if hotelEntity != nil {
		spec = &booking.HotelSpec{
			ID:                 hotelEntity.ID(),
			Name:               hotelEntity.Name(),
			PricePerNightCents: hotelEntity.PricePerNightCents(),
		}
	}

	reference, err := c.allocateReference(ctx)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := c.bookingFactory.CreateBooking(spec, userID, domainReq, reference)
	if err != nil {
		return nil, err
	}

	if err := c.bookingRepo.Create(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.publishEvent(ctx, event.TypeBookingConfirmed, view, hotelEntity)

	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) (*queries.BookingView, error) {
	bookingEntity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !actorRole.IsStaff() && !bookingEntity.IsOwnedBy(actorID) {
		return nil, ErrBookingAccessDenied
	}

	if err := bookingEntity.Cancel(c.clock.Now()); err != nil {
		return nil, err
	}

	if err := c.bookingRepo.UpdateStatus(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.publishEvent(ctx, event.TypeBookingCancelled, view, nil)

	return view, nil
}

// CompleteFinishedStays flips confirmed bookings with a past check-out to
// completed and reports how many were affected. Invoked by the worker on a
// timer, never by an API request.
func (c *bookingCommandsImpl) CompleteFinishedStays(ctx context.Context) (int, error) {
	completed, err := c.bookingRepo.CompleteFinishedStays(ctx, c.clock.Today(), c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, id := range completed {
		view, err := c.bookingQueries.GetByIDSystem(ctx, id)
		if err != nil {
			slog.Warn("failed to load completed booking for notification", "booking_id", id, "error", err.Error())
			continue
		}
		c.publishEvent(ctx, event.TypeBookingCompleted, view, nil)
	}

	return len(completed), nil
}

func (c *bookingCommandsImpl) findHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error) {
	h, err := c.hotelRepo.FindActiveByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The factory reports the missing hotel as a field error.
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return h, nil
}

// allocateReference draws random codes until one is free. The unique
// constraint on bookings.reference backstops the race between the check
// and the insert.
func (c *bookingCommandsImpl) allocateReference(ctx context.Context) (string, error) {
	for i := 0; i < referenceAttempts; i++ {
		code := c.refGenerator.Generate()
		exists, err := c.bookingRepo.ExistsByReference(ctx, code)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrReferenceExhausted
}

func (c *bookingCommandsImpl) publishEvent(ctx context.Context, eventType string, view *queries.BookingView, hotelEntity *hotel.Hotel) {
	ev := event.BookingEvent{
		Type:       eventType,
		BookingRef: view.Reference,
		HotelName:  view.HotelName,
		UserEmail:  view.UserEmail,
		CheckIn:    view.CheckIn,
		CheckOut:   view.CheckOut,
		Guests:     view.Guests,
		TotalCents: view.TotalCents,
		Status:     view.Status,
		OccurredAt: c.clock.Now(),
	}

	if hotelEntity != nil {
		if owner, err := c.userRepo.FindByID(ctx, hotelEntity.OwnerID()); err == nil {
			ev.OwnerEmail = owner.Email().Value()
		}
	}

	if err := c.publisher.PublishBookingEvent(ctx, ev); err != nil {
		slog.Warn("failed to publish booking event", "type", eventType, "booking_id", view.Reference, "error", err.Error())
	}
}
