package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var hotelSortColumns = map[string]string{
	"price":        "h.price_per_night_cents",
	"star_rating":  "h.star_rating",
	"guest_rating": "h.guest_rating",
	"name":         "h.name",
}

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(database db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: database}
}

func (r *HotelReadStore) FindBySlug(ctx context.Context, slug string) (*queries.HotelView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT h.id, h.name, h.slug, h.city_id, c.name, h.address, h.description,
		       h.price_per_night_cents, h.star_rating, h.guest_rating, h.total_reviews,
		       h.is_featured, h.created_at
		FROM hotels h
		JOIN cities c ON c.id = h.city_id
		WHERE h.slug = $1 AND h.is_active = TRUE`, slug)

	var v queries.HotelView
	err := row.Scan(&v.ID, &v.Name, &v.Slug, &v.CityID, &v.CityName, &v.Address,
		&v.Description, &v.PricePerNightCents, &v.StarRating, &v.GuestRating,
		&v.TotalReviews, &v.IsFeatured, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by slug", err)
	}

	amenities, err := r.amenitiesForHotel(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Amenities = amenities

	return &v, nil
}

func (r *HotelReadStore) Search(ctx context.Context, filter queries.HotelFilter) ([]*queries.HotelListItem, error) {
	conds := []string{"h.is_active = TRUE"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CitySlug != nil {
		conds = append(conds, "c.slug = "+arg(*filter.CitySlug))
	}
	if filter.MinStarRating != nil {
		conds = append(conds, "h.star_rating >= "+arg(*filter.MinStarRating))
	}
	if filter.MaxPriceCents != nil {
		conds = append(conds, "h.price_per_night_cents <= "+arg(*filter.MaxPriceCents))
	}
	if filter.Search != nil {
		conds = append(conds, "h.name ILIKE "+arg("%"+*filter.Search+"%"))
	}

	sortCol, ok := hotelSortColumns[filter.Sort]
	if !ok {
		sortCol = "h.guest_rating"
		filter.SortDescending = true
	}
	dir := "ASC"
	if filter.SortDescending {
		dir = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT h.id, h.name, h.slug, c.name, h.price_per_night_cents,
		       h.star_rating, h.guest_rating, h.total_reviews, h.is_featured
		FROM hotels h
		JOIN cities c ON c.id = h.city_id
		WHERE %s
		ORDER BY %s %s, h.id
		LIMIT %s OFFSET %s`,
		strings.Join(conds, " AND "), sortCol, dir, arg(limit), arg(filter.Offset))

	return r.queryList(ctx, query, args)
}

// Featured returns the curated front-page hotels. The result is cached in
// redis by the query service.
func (r *HotelReadStore) Featured(ctx context.Context) ([]*queries.HotelListItem, error) {
	return r.queryList(ctx, `
		SELECT h.id, h.name, h.slug, c.name, h.price_per_night_cents,
		       h.star_rating, h.guest_rating, h.total_reviews, h.is_featured
		FROM hotels h
		JOIN cities c ON c.id = h.city_id
		WHERE h.is_active = TRUE AND h.is_featured = TRUE
		ORDER BY h.guest_rating DESC, h.id`, nil)
}

func (r *HotelReadStore) queryList(ctx context.Context, query string, args []any) ([]*queries.HotelListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var result []*queries.HotelListItem
	for rows.Next() {
		var item queries.HotelListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.CityName,
			&item.PricePerNightCents, &item.StarRating, &item.GuestRating,
			&item.TotalReviews, &item.IsFeatured); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}
	return result, nil
}

func (r *HotelReadStore) amenitiesForHotel(ctx context.Context, hotelID uuid.UUID) ([]queries.AmenityView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.icon
		FROM amenities a
		JOIN hotel_amenities ha ON ha.amenity_id = a.id
		WHERE ha.hotel_id = $1
		ORDER BY a.name`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel amenities", err)
	}
	defer rows.Close()

	var result []queries.AmenityView
	for rows.Next() {
		var a queries.AmenityView
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity row", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
