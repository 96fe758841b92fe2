package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// ValidRole reports whether s is one of the enumerated roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleClient
}

// User models an account as stored in the credential store. PasswordHash is
// excluded from JSON and never crosses the service boundary: every operation
// that returns a user to a caller returns a PublicUser instead.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the outward view of a User. The type has no password field at
// all, so a hash cannot leak through it by construction.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the caller-facing view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
