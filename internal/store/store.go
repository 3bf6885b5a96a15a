// Package store owns the durability contract for the user collection: load
// and save the whole collection as a unit against a durable medium.
package store

import (
	"errors"

	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// ErrUnavailable is returned when the backing medium cannot be read or
// written. Missing data is not an error; it yields an empty collection.
var ErrUnavailable = errors.New("store unavailable")

// Store persists the user collection. Save fully replaces prior content;
// there is no partial merge and no in-memory cache between calls, so callers
// that mutate must hold their read-modify-write sequence under one lock.
type Store interface {
	Load() ([]schema.UserRecord, error)
	Save(users []schema.UserRecord) error
}
