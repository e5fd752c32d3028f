package request

import (
	"hotel-booking-api/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Role is limited to the self-service roles. Admins are provisioned
	// out of band.
	Role string `json:"role" binding:"omitempty,oneof=customer hotel_owner"`
}

func (r *RegisterRequest) ToDomain() (user.Email, user.Role, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, "", err
	}

	if _, err := user.NewPassword(r.Password); err != nil {
		return user.Email{}, "", err
	}

	role := user.RoleCustomer
	if r.Role != "" {
		role, err = user.NewRole(r.Role)
		if err != nil {
			return user.Email{}, "", err
		}
	}

	return email, role, nil
}
