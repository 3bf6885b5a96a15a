// Package directory implements the user directory service: create, fetch,
// list and delete user records with unique-email enforcement, stable ID
// assignment and deterministic pagination over a whole-collection store.
package directory

import "errors"

var (
	// ErrMissingFields is returned when a create request omits a required field.
	ErrMissingFields = errors.New("missing required fields: email, password, role")
	// ErrInvalidRole is returned when a create request carries an unknown role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrEmailExists is returned when a create request duplicates a live email.
	ErrEmailExists = errors.New("user with this email already exists")
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrSelfDeletion is returned when a principal tries to delete itself.
	ErrSelfDeletion = errors.New("cannot delete yourself")
)
