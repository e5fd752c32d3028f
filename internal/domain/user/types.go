package user

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleHotelOwner Role = "hotel_owner"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleHotelOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may see and manage bookings made by
// other users.
func (r Role) IsStaff() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
