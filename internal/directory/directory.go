package directory

import (
	"strings"
	"sync"
	"time"

	"github.com/celerix-dev/celerix-directory/internal/store"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// Directory orchestrates the store, the identity index and the pagination
// engine into the create/get/list/delete operations.
//
// The store has no cache between calls, so every mutating operation is one
// critical section: read store -> validate -> mutate in memory -> write
// store. Writers hold the exclusive lock for that whole sequence; two
// concurrent creates with the same email can therefore never both pass the
// uniqueness check. Readers share the lock.
type Directory struct {
	mu    sync.RWMutex
	store store.Store

	// Injection points for tests; defaults are time.Now and UUIDv4.
	now   func() time.Time
	newID func() string
}

// New initializes a directory service over the given store.
func New(s store.Store) *Directory {
	return &Directory{
		store: s,
		now:   time.Now,
		newID: assignID,
	}
}

// Create validates and appends a new record, then persists the collection.
// The credential arrives as an opaque blob; hashing happens at the boundary
// that accepted the plaintext. Returns the redacted view of the new record.
func (d *Directory) Create(email, credential, name, role string) (schema.PublicUser, error) {
	if email == "" || credential == "" || role == "" {
		return schema.PublicUser{}, ErrMissingFields
	}
	if !schema.ValidRole(role) {
		return schema.PublicUser{}, ErrInvalidRole
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.store.Load()
	if err != nil {
		return schema.PublicUser{}, err
	}

	if findByEmail(users, email) != nil {
		return schema.PublicUser{}, ErrEmailExists
	}

	if name == "" {
		// Default to the local part of the email address.
		name = email
		if at := strings.Index(email, "@"); at >= 0 {
			name = email[:at]
		}
	}

	user := schema.UserRecord{
		ID:        d.newID(),
		Email:     email,
		Name:      name,
		Role:      role,
		Password:  credential,
		CreatedAt: d.now().UTC(),
	}

	users = append(users, user)
	if err := d.store.Save(users); err != nil {
		// Nothing durable changed; the appended record is discarded here.
		return schema.PublicUser{}, err
	}
	return user.Public(), nil
}

// GetByID returns the full record, credential included. Callers that face
// the outside world are expected to redact.
func (d *Directory) GetByID(id string) (schema.UserRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users, err := d.store.Load()
	if err != nil {
		return schema.UserRecord{}, err
	}

	idx := findByID(users, id)
	if idx == -1 {
		return schema.UserRecord{}, ErrNotFound
	}
	return users[idx], nil
}

// GetByEmail returns the full record for the auth collaborator's login path.
func (d *Directory) GetByEmail(email string) (schema.UserRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users, err := d.store.Load()
	if err != nil {
		return schema.UserRecord{}, err
	}

	u := findByEmail(users, email)
	if u == nil {
		return schema.UserRecord{}, ErrNotFound
	}
	return *u, nil
}

// ListAll returns the full collection verbatim, in insertion order.
func (d *Directory) ListAll() ([]schema.UserRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.store.Load()
}

// ListPaged returns one deterministic slice of the ordered collection.
func (d *Directory) ListPaged(page, limit int) (PageResult, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users, err := d.store.Load()
	if err != nil {
		return PageResult{}, err
	}
	return paginate(users, page, limit), nil
}

// Delete removes the record with the given id and persists the collection.
// A principal may not delete itself.
func (d *Directory) Delete(id, requesterID string) (schema.DeletedUser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.store.Load()
	if err != nil {
		return schema.DeletedUser{}, err
	}

	idx := findByID(users, id)
	if idx == -1 {
		return schema.DeletedUser{}, ErrNotFound
	}
	if requesterID == id {
		return schema.DeletedUser{}, ErrSelfDeletion
	}

	deleted := users[idx]
	users = append(users[:idx], users[idx+1:]...)
	if err := d.store.Save(users); err != nil {
		return schema.DeletedUser{}, err
	}
	return schema.DeletedUser{ID: deleted.ID, Email: deleted.Email}, nil
}
