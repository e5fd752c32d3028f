package queries

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelQueries interface {
	GetBySlug(ctx context.Context, slug string) (*HotelView, error)
	Search(ctx context.Context, filter HotelFilter) ([]*HotelListItem, error)
	Featured(ctx context.Context) ([]*HotelListItem, error)
	ListCities(ctx context.Context) ([]*CityView, error)
	ListAmenities(ctx context.Context) ([]*AmenityView, error)
}

type HotelReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*HotelView, error)
	Search(ctx context.Context, filter HotelFilter) ([]*HotelListItem, error)
	Featured(ctx context.Context) ([]*HotelListItem, error)
}

type CityReadStore interface {
	ListAll(ctx context.Context) ([]*CityView, error)
}

type AmenityReadStore interface {
	ListAll(ctx context.Context) ([]*AmenityView, error)
}

// FeaturedCache fronts the featured-hotels listing, the hottest read on
// the landing page.
type FeaturedCache interface {
	GetFeaturedHotels(ctx context.Context) ([]*HotelListItem, error)
	SetFeaturedHotels(ctx context.Context, hotels []*HotelListItem) error
}

type hotelQueriesImpl struct {
	hotels    HotelReadStore
	cities    CityReadStore
	amenities AmenityReadStore
	cache     FeaturedCache
}

func NewHotelQueries(hotels HotelReadStore, cities CityReadStore, amenities AmenityReadStore, cache FeaturedCache) HotelQueries {
	return &hotelQueriesImpl{
		hotels:    hotels,
		cities:    cities,
		amenities: amenities,
		cache:     cache,
	}
}

func (q *hotelQueriesImpl) GetBySlug(ctx context.Context, slug string) (*HotelView, error) {
	view, err := q.hotels.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) Search(ctx context.Context, filter HotelFilter) ([]*HotelListItem, error) {
	return q.hotels.Search(ctx, filter)
}

// Featured serves from cache when possible. Cache trouble degrades to a
// direct read, never to an error.
func (q *hotelQueriesImpl) Featured(ctx context.Context) ([]*HotelListItem, error) {
	cached, err := q.cache.GetFeaturedHotels(ctx)
	if err != nil {
		slog.Warn("featured hotels cache read failed", "error", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	hotels, err := q.hotels.Featured(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetFeaturedHotels(ctx, hotels); err != nil {
		slog.Warn("featured hotels cache write failed", "error", err.Error())
	}

	return hotels, nil
}

func (q *hotelQueriesImpl) ListCities(ctx context.Context) ([]*CityView, error) {
	return q.cities.ListAll(ctx)
}

func (q *hotelQueriesImpl) ListAmenities(ctx context.Context) ([]*AmenityView, error) {
	return q.amenities.ListAll(ctx)
}
