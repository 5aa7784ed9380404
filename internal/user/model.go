package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
)

// Role determines what a user can do on the platform.
type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RoleFacilityOwner Role = "FACILITY_OWNER"
	RoleAdmin         Role = "ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleFacilityOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents an account on the platform.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the user has platform admin privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
