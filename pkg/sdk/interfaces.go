// Package sdk provides the client-side library for the Celerix Directory.
// It supports both remote access over the HTTP API and local embedded mode.
package sdk

import (
	"errors"

	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

var (
	// ErrUnauthorized is returned when the directory rejects the caller's token.
	ErrUnauthorized = errors.New("unauthorized: missing or invalid token")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden: admin role required")
)

// --- Functional Interfaces (Interface Segregation) ---

// UserReader defines the read operations of the directory.
type UserReader interface {
	GetUser(id string) (schema.PublicUser, error)
	ListUsers() ([]schema.PublicUser, error)
	ListPage(page, limit int) (schema.Page, error)
}

// UserWriter defines the mutating operations of the directory.
type UserWriter interface {
	CreateUser(email, password, name, role string) (schema.PublicUser, error)
	DeleteUser(id string) (schema.DeletedUser, error)
}

// --- Composite Interface ---

// UserDirectory is the primary interface for interacting with the directory.
// Both the remote HTTP client and the embedded local directory implement it.
type UserDirectory interface {
	UserReader
	UserWriter

	// Ping verifies the directory is reachable.
	Ping() error
}
