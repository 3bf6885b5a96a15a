package directory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/celerix-dev/celerix-directory/internal/store"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

func newTestDirectory(seed []schema.UserRecord) (*Directory, *store.MemStore) {
	ms := store.NewMemStore(seed)
	return New(ms), ms
}

func TestCreateAndGet(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	created, err := dir.Create("a@b.com", "blob", "", schema.RoleUser)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected an assigned id")
	}
	if created.Name != "a" {
		t.Errorf("Expected name defaulted to local part 'a', got %q", created.Name)
	}

	got, err := dir.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "a@b.com" || got.Name != "a" || got.Role != schema.RoleUser {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
	if got.Password != "blob" {
		t.Errorf("Credential blob should be stored opaquely, got %q", got.Password)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not stamped")
	}
}

func TestCreateKeepsExplicitName(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	created, err := dir.Create("a@b.com", "blob", "Alice", schema.RoleUser)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Alice" {
		t.Errorf("Expected Alice, got %q", created.Name)
	}
}

func TestCreateValidation(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	cases := []struct {
		email, credential, role string
	}{
		{"", "blob", schema.RoleUser},
		{"a@b.com", "", schema.RoleUser},
		{"a@b.com", "blob", ""},
	}
	for _, c := range cases {
		if _, err := dir.Create(c.email, c.credential, "", c.role); !errors.Is(err, ErrMissingFields) {
			t.Errorf("Create(%q, %q, %q): expected ErrMissingFields, got %v", c.email, c.credential, c.role, err)
		}
	}

	if _, err := dir.Create("a@b.com", "blob", "", "superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	dir, ms := newTestDirectory(nil)

	if _, err := dir.Create("dup@example.com", "blob", "", schema.RoleUser); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := dir.Create("dup@example.com", "other", "", schema.RoleAdmin)
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("Expected ErrEmailExists, got %v", err)
	}

	users, _ := ms.Load()
	if len(users) != 1 {
		t.Errorf("Conflicting create must not mutate the store: %d records", len(users))
	}
}

func TestCreateSaveFailureLeavesStoreUntouched(t *testing.T) {
	dir, ms := newTestDirectory(nil)
	ms.FailSaves = true

	_, err := dir.Create("a@b.com", "blob", "", schema.RoleUser)
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}

	ms.FailSaves = false
	users, err := dir.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Failed create must leave no partial record, got %d", len(users))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	if _, err := dir.GetByID("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetByEmail(t *testing.T) {
	dir, _ := newTestDirectory([]schema.UserRecord{
		{ID: "u1", Email: "x@y.com", Password: "hash"},
	})

	got, err := dir.GetByEmail("x@y.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != "u1" || got.Password != "hash" {
		t.Errorf("Unexpected record: %+v", got)
	}

	if _, err := dir.GetByEmail("nobody@y.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	for i := 0; i < 5; i++ {
		if _, err := dir.Create(fmt.Sprintf("u%d@x.com", i), "blob", "", schema.RoleUser); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	users, err := dir.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("Expected 5 users, got %d", len(users))
	}
	for i, u := range users {
		if u.Email != fmt.Sprintf("u%d@x.com", i) {
			t.Errorf("Order broken at %d: %s", i, u.Email)
		}
	}
}

func TestListPaged(t *testing.T) {
	dir, _ := newTestDirectory(makeUsers(25))

	result, err := dir.ListPaged(3, 10)
	if err != nil {
		t.Fatalf("ListPaged failed: %v", err)
	}
	if len(result.Items) != 5 || result.TotalPages != 3 || result.TotalItems != 25 {
		t.Errorf("Unexpected page: %d items, %d pages, %d total", len(result.Items), result.TotalPages, result.TotalItems)
	}
}

func TestDelete(t *testing.T) {
	dir, _ := newTestDirectory([]schema.UserRecord{
		{ID: "u1", Email: "a@x.com"},
		{ID: "u2", Email: "b@x.com"},
	})

	deleted, err := dir.Delete("u1", "admin-0")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != "u1" || deleted.Email != "a@x.com" {
		t.Errorf("Unexpected deleted view: %+v", deleted)
	}

	users, _ := dir.ListAll()
	if len(users) != 1 || users[0].ID != "u2" {
		t.Errorf("Exactly one record should remain: %+v", users)
	}
}

func TestDeleteNotFound(t *testing.T) {
	dir, _ := newTestDirectory(nil)

	if _, err := dir.Delete("ghost", "admin-0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSelf(t *testing.T) {
	dir, ms := newTestDirectory([]schema.UserRecord{
		{ID: "admin-1", Email: "admin@x.com", Role: schema.RoleAdmin},
	})

	if _, err := dir.Delete("admin-1", "admin-1"); !errors.Is(err, ErrSelfDeletion) {
		t.Fatalf("Expected ErrSelfDeletion, got %v", err)
	}

	users, _ := ms.Load()
	if len(users) != 1 {
		t.Error("Self-deletion must leave the collection unchanged")
	}
}

func TestConcurrentCreateUniqueness(t *testing.T) {
	dir, _ := newTestDirectory(nil)
	const workers = 20

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = dir.Create("race@example.com", "blob", "", schema.RoleUser)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrEmailExists) {
			t.Errorf("Unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("Expected exactly 1 successful create, got %d", successes)
	}

	users, _ := dir.ListAll()
	if len(users) != 1 {
		t.Errorf("Expected 1 live record, got %d", len(users))
	}
}
