package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(database db.DBTX) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone_number, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		u.ID(), u.Email().Value(), u.PasswordHash(),
		u.FirstName(), u.LastName(), u.PhoneNumber(),
		u.Role().String(), u.IsActive(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name, phone_number, role, last_login, is_active, created_at, updated_at
		FROM users WHERE email = $1`, email.Value())

	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name, phone_number, role, last_login, is_active, created_at, updated_at
		FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                   uuid.UUID
		emailRaw, hash, role string
		first, last, phone   string
		lastLogin            *time.Time
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &emailRaw, &hash, &first, &last, &phone, &role, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}
	r, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(id, email, hash, first, last, phone, r, lastLogin, isActive, createdAt, updatedAt), nil
}
