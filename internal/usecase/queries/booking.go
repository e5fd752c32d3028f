package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check. Internal use only.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actorID uuid.UUID, actorRole user.Role, filter BookingFilter) ([]*BookingListItem, error)
	Upcoming(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error)
	History(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, userID *uuid.UUID, filter BookingFilter) ([]*BookingListItem, error)
	Upcoming(ctx context.Context, userID *uuid.UUID, today time.Time) ([]*BookingListItem, error)
	History(ctx context.Context, userID *uuid.UUID, today time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actorRole.IsStaff() && view.UserID != actorID {
		// Hidden as not-found so outsiders cannot probe for booking IDs.
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// List scopes the listing to the actor's own bookings unless the actor is
// staff, who see every user's bookings.
func (q *bookingQueriesImpl) List(ctx context.Context, actorID uuid.UUID, actorRole user.Role, filter BookingFilter) ([]*BookingListItem, error) {
	return q.readStore.List(ctx, scopeFor(actorID, actorRole), filter)
}

func (q *bookingQueriesImpl) Upcoming(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error) {
	return q.readStore.Upcoming(ctx, scopeFor(actorID, actorRole), q.clock.Today())
}

func (q *bookingQueriesImpl) History(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error) {
	return q.readStore.History(ctx, scopeFor(actorID, actorRole), q.clock.Today())
}

// scopeFor returns the user filter for the actor: nil for staff, who see
// every user's bookings.
func scopeFor(actorID uuid.UUID, actorRole user.Role) *uuid.UUID {
	if actorRole.IsStaff() {
		return nil
	}
	return &actorID
}
