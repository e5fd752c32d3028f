package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(database db.DBTX) *HotelRepository {
	return &HotelRepository{db: database}
}

// FindActiveByID returns the hotel only when it exists and is active.
// Bookings against inactive hotels are rejected upstream.
func (r *HotelRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, slug, city_id, address, description, price_per_night_cents,
		       star_rating, guest_rating, total_reviews, owner_id, is_active, is_featured,
		       created_at, updated_at
		FROM hotels WHERE id = $1 AND is_active = TRUE`, id)

	h, err := scanHotel(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return h, nil
}

// ApplyReview folds a new review into the hotel's aggregate guest rating.
func (r *HotelRepository) ApplyReview(ctx context.Context, hotelID uuid.UUID, rating int, now time.Time) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE hotels
		SET guest_rating = (guest_rating * total_reviews + $1) / (total_reviews + 1),
		    total_reviews = total_reviews + 1,
		    updated_at = $2
		WHERE id = $3`,
		rating, now, hotelID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to apply review to hotel rating", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanHotel(row rowScanner) (*hotel.Hotel, error) {
	var (
		id, cityID, ownerID       uuid.UUID
		name, slug, address, desc string
		priceCents                int64
		starRating, totalReviews  int
		guestRating               float64
		isActive, isFeatured      bool
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&id, &name, &slug, &cityID, &address, &desc, &priceCents,
		&starRating, &guestRating, &totalReviews, &ownerID, &isActive, &isFeatured,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return hotel.ReconstructHotel(
		id, name, slug, cityID, address, desc, priceCents,
		starRating, guestRating, totalReviews, ownerID,
		isActive, isFeatured, createdAt, updatedAt,
	), nil
}
