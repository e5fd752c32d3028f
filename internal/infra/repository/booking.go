package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(database db.DBTX) *BookingRepository {
	return &BookingRepository{db: database}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, reference, hotel_id, user_id, check_in, check_out, guests, nights, total_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		b.ID(), b.Reference(), b.HotelID(), b.UserID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.Guests(), b.Nights(), b.Total().Cents(),
		b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, reference, hotel_id, user_id, check_in, check_out, guests, total_cents, status, created_at, updated_at
		FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, reference, hotel_id, user_id, check_in, check_out, guests, total_cents, status, created_at, updated_at
		FROM bookings WHERE reference = $1`, reference)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	return b, nil
}

func (r *BookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE reference = $1)`, reference,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking reference", err)
	}
	return exists, nil
}

// UpdateStatus persists a status transition performed on the entity.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		b.Status().String(), b.UpdatedAt(), b.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CompleteFinishedStays flips confirmed bookings whose check-out date has
// passed to completed, returning the affected IDs.
func (r *BookingRepository) CompleteFinishedStays(ctx context.Context, today, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE bookings SET status = $1, updated_at = $2
		WHERE status = $3 AND check_out < $4
		RETURNING id`,
		booking.StatusCompleted.String(), now, booking.StatusConfirmed.String(), today,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete finished stays", err)
	}
	defer rows.Close()

	var completed []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed booking ID", err)
		}
		completed = append(completed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read completed bookings", err)
	}
	return completed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, hotelID, userID  uuid.UUID
		reference, status    string
		checkIn, checkOut    time.Time
		guests               int
		totalCents           int64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &reference, &hotelID, &userID, &checkIn, &checkOut, &guests, &totalCents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, reference, hotelID, userID,
		booking.ReconstructStayRange(checkIn, checkOut),
		guests,
		booking.NewMoney(totalCents),
		st,
		createdAt, updatedAt,
	), nil
}
