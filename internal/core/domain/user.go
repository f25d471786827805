package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. Email and username are unique across all
// accounts (enforced by the store). Deactivation via Active=false is the
// deletion path; accounts are never hard-deleted.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
