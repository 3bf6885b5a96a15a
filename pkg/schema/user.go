// Package schema defines universal data structures shared by the directory
// service, the HTTP API and the SDK.
package schema

import "time"

// Roles a user record may carry.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// UserRecord is a single directory entry. Password holds the opaque
// credential blob produced by the auth layer; it is persisted with the
// record but API handlers only ever return the projections below.
type UserRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the redacted view of a record: everything except the
// credential.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the redacted projection of the record.
func (u UserRecord) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// DeletedUser identifies a record that was just removed.
type DeletedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Page is the wire shape of a paginated listing. All five fields are part of
// the stable contract for any consumer.
type Page struct {
	Items      []PublicUser `json:"items"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalItems int          `json:"totalItems"`
	TotalPages int          `json:"totalPages"`
}
