package store

import (
	"sync"

	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// MemStore keeps the collection in memory. It backs tests and the SDK's
// embedded mode. FailSaves forces Save to report ErrUnavailable without
// mutating anything, which is how the atomicity-under-failure tests drive
// the service.
type MemStore struct {
	mu        sync.Mutex
	users     []schema.UserRecord
	FailSaves bool
}

// NewMemStore initializes a store seeded with initial records.
func NewMemStore(initial []schema.UserRecord) *MemStore {
	m := &MemStore{}
	m.users = append(m.users, initial...)
	return m
}

func (m *MemStore) Load() ([]schema.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Return a copy so callers cannot mutate the stored collection.
	users := make([]schema.UserRecord, len(m.users))
	copy(users, m.users)
	return users, nil
}

func (m *MemStore) Save(users []schema.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSaves {
		return ErrUnavailable
	}

	m.users = make([]schema.UserRecord, len(users))
	copy(m.users, users)
	return nil
}
