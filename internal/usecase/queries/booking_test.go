//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func newBookingQueries(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockBookingReadStore(ctrl)
	return queries.NewBookingQueries(readStore, clock.NewMockClock(builder.FrozenNow)), readStore
}

func TestBookingGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees their booking", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		b := builder.NewBookingBuilder()
		view := b.BuildView()

		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := q.GetByID(ctx, view.UserID, user.RoleCustomer, view.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), actual, cmpOpts...); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("someone else's booking reads as not found", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		view := builder.NewBookingBuilder().BuildView()

		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, uuid.New(), user.RoleCustomer, view.ID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		view := builder.NewBookingBuilder().BuildView()

		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := q.GetByID(ctx, uuid.New(), user.RoleAdmin, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("missing booking", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		id := uuid.New()

		readStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, uuid.New(), user.RoleAdmin, id)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingList(t *testing.T) {
	ctx := context.Background()

	t.Run("customers are scoped to their own bookings", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		actorID := uuid.New()
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}

		readStore.EXPECT().List(gomock.Any(), gomock.Cond(func(x any) bool {
			scope, ok := x.(*uuid.UUID)
			return ok && scope != nil && *scope == actorID
		}), gomock.Any()).Return(items, nil)

		actual, err := q.List(ctx, actorID, user.RoleCustomer, queries.BookingFilter{})
		require.NoError(t, err)
		assert.Equal(t, items, actual)
	})

	t.Run("admins list across all users", func(t *testing.T) {
		q, readStore := newBookingQueries(t)

		readStore.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil, nil)

		_, err := q.List(ctx, uuid.New(), user.RoleAdmin, queries.BookingFilter{})
		require.NoError(t, err)
	})
}

func TestBookingUpcomingAndHistory(t *testing.T) {
	ctx := context.Background()
	today := clock.Midnight(builder.FrozenNow)

	ownScope := func(userID uuid.UUID) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			scope, ok := x.(*uuid.UUID)
			return ok && scope != nil && *scope == userID
		})
	}

	t.Run("upcoming pins the cutoff to today", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		userID := uuid.New()

		readStore.EXPECT().Upcoming(gomock.Any(), ownScope(userID), today).Return(nil, nil)

		_, err := q.Upcoming(ctx, userID, user.RoleCustomer)
		require.NoError(t, err)
	})

	t.Run("history pins the cutoff to today", func(t *testing.T) {
		q, readStore := newBookingQueries(t)
		userID := uuid.New()

		readStore.EXPECT().History(gomock.Any(), ownScope(userID), today).Return(nil, nil)

		_, err := q.History(ctx, userID, user.RoleCustomer)
		require.NoError(t, err)
	})

	t.Run("staff upcoming spans all users", func(t *testing.T) {
		q, readStore := newBookingQueries(t)

		readStore.EXPECT().Upcoming(gomock.Any(), gomock.Nil(), today).Return(nil, nil)

		_, err := q.Upcoming(ctx, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("staff history spans all users", func(t *testing.T) {
		q, readStore := newBookingQueries(t)

		readStore.EXPECT().History(gomock.Any(), gomock.Nil(), today).Return(nil, nil)

		_, err := q.History(ctx, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
	})
}
