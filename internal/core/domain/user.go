package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleLawyer = "lawyer"
	RoleClient = "client"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleLawyer || r == RoleClient
}

// User models an account in the experimental authentication service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
