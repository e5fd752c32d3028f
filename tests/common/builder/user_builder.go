//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	domuser "hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         domuser.Role
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye.fake.hash.for.tests",
		FirstName:    "Alice",
		LastName:     "Martin",
		Role:         domuser.RoleCustomer,
		IsActive:     true,
		CreatedAt:    FrozenNow,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain(t *testing.T) *domuser.User {
	t.Helper()
	email, err := domuser.NewEmail(u.Email)
	require.NoError(t, err)
	return domuser.ReconstructUser(
		u.ID,
		email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		"",
		u.Role,
		nil,
		u.IsActive,
		u.CreatedAt,
		u.CreatedAt,
	)
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
