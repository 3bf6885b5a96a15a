package directory

import (
	"github.com/google/uuid"

	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// assignID produces a unique opaque identifier for a new record. UUIDv4
// carries 122 random bits, so there is no collision-handling path.
func assignID() string {
	return uuid.NewString()
}

// findByEmail returns the first record with the given email, or nil.
// Linear scans are fine for the collection sizes this store targets; a hash
// index keyed by email is a drop-in swap if that changes.
func findByEmail(users []schema.UserRecord, email string) *schema.UserRecord {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

// findByID returns the index of the record with the given id, or -1.
func findByID(users []schema.UserRecord, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
