package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const bookingListColumns = `
	b.id, b.reference, b.hotel_id, h.name, b.check_in, b.check_out,
	b.guests, b.nights, b.total_cents, b.status, b.created_at`

// sort keys accepted from the outside, mapped to real columns. Anything
// else falls back to created_at.
var bookingSortColumns = map[string]string{
	"created_at":   "b.created_at",
	"check_in":     "b.check_in",
	"check_out":    "b.check_out",
	"total_amount": "b.total_cents",
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(database db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: database}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.reference, b.hotel_id, h.name, c.name, b.user_id, u.email,
		       b.check_in, b.check_out, b.guests, b.nights, b.total_cents, b.status,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN cities c ON c.id = h.city_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`, id)

	var v queries.BookingView
	err := row.Scan(&v.ID, &v.Reference, &v.HotelID, &v.HotelName, &v.CityName,
		&v.UserID, &v.UserEmail, &v.CheckIn, &v.CheckOut, &v.Guests, &v.Nights,
		&v.TotalCents, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return &v, nil
}

// List returns bookings matching the filter. A nil userID widens the scope
// to all users (staff listing).
func (r *BookingReadStore) List(ctx context.Context, userID *uuid.UUID, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if userID != nil {
		conds = append(conds, "b.user_id = "+arg(*userID))
	}
	if filter.Status != nil {
		conds = append(conds, "b.status = "+arg(*filter.Status))
	}
	if filter.CheckInFrom != nil {
		conds = append(conds, "b.check_in >= "+arg(*filter.CheckInFrom))
	}
	if filter.CheckInTo != nil {
		conds = append(conds, "b.check_in <= "+arg(*filter.CheckInTo))
	}
	if filter.CheckOutFrom != nil {
		conds = append(conds, "b.check_out >= "+arg(*filter.CheckOutFrom))
	}
	if filter.CheckOutTo != nil {
		conds = append(conds, "b.check_out <= "+arg(*filter.CheckOutTo))
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, "b.created_at >= "+arg(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, "b.created_at <= "+arg(*filter.CreatedTo))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	sortCol, ok := bookingSortColumns[filter.Sort]
	if !ok {
		sortCol = "b.created_at"
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
		SELECT %s
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		%s
		ORDER BY %s %s, b.id
		LIMIT %s OFFSET %s`,
		bookingListColumns, where, sortCol, dir, arg(limit), arg(filter.Offset))

	return r.queryList(ctx, query, args)
}

// Upcoming returns active bookings whose check-in date is today or later,
// soonest stay first. A nil userID widens the scope to all users.
func (r *BookingReadStore) Upcoming(ctx context.Context, userID *uuid.UUID, today time.Time) ([]*queries.BookingListItem, error) {
	args := []any{today}
	scope := ""
	if userID != nil {
		args = append(args, *userID)
		scope = " AND b.user_id = $2"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE b.check_in >= $1 AND b.status IN ('pending', 'confirmed')%s
		ORDER BY b.check_in ASC, b.id`, bookingListColumns, scope)

	return r.queryList(ctx, query, args)
}

// History returns bookings whose stay already ended or reached a terminal
// status, most recent stay first. A nil userID widens the scope to all users.
func (r *BookingReadStore) History(ctx context.Context, userID *uuid.UUID, today time.Time) ([]*queries.BookingListItem, error) {
	args := []any{today}
	scope := ""
	if userID != nil {
		args = append(args, *userID)
		scope = " AND b.user_id = $2"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE (b.check_out < $1 OR b.status IN ('cancelled', 'completed'))%s
		ORDER BY b.check_out DESC, b.id`, bookingListColumns, scope)

	return r.queryList(ctx, query, args)
}

func (r *BookingReadStore) queryList(ctx context.Context, query string, args []any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.Reference, &item.HotelID, &item.HotelName,
			&item.CheckIn, &item.CheckOut, &item.Guests, &item.Nights,
			&item.TotalCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
