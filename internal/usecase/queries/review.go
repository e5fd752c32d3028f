package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByHotel(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	ListByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReviewView, error) {
	return q.readStore.ListByHotelID(ctx, hotelID, limit, offset)
}
