package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

func testUsers() []schema.UserRecord {
	return []schema.UserRecord{
		{ID: "u1", Email: "a@x.com", Name: "a", Role: schema.RoleAdmin, Password: "hash-a", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: "u2", Email: "b@x.com", Name: "b", Role: schema.RoleUser, Password: "hash-b", CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}
}

func TestFileStore_LoadMissingFileIsEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	fs, err := NewFileStore(filepath.Join(tmpDir, "users.json"), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	users, err := fs.Load()
	if err != nil {
		t.Fatalf("Load on missing file should not error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected empty collection, got %d", len(users))
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "users.json")

	fs, err := NewFileStore(path, nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	want := testUsers()
	if err := fs.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The temp file must not survive the atomic swap.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file left behind after Save")
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Email != want[i].Email || got[i].Password != want[i].Password {
			t.Errorf("Record %d mismatch: %+v", i, got[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Errorf("Record %d CreatedAt mismatch: %v vs %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
	}
}

func TestFileStore_SaveReplacesWholeCollection(t *testing.T) {
	fs, _ := NewFileStore(filepath.Join(t.TempDir(), "users.json"), nil)

	fs.Save(testUsers())
	if err := fs.Save([]schema.UserRecord{{ID: "only", Email: "only@x.com"}}); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got, _ := fs.Load()
	if len(got) != 1 || got[0].ID != "only" {
		t.Errorf("Save must replace, not merge: %+v", got)
	}
}

func TestFileStore_CorruptFileIsUnavailable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	fs, _ := NewFileStore(path, nil)
	_, err := fs.Load()
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for corrupt data, got %v", err)
	}
}

func TestFileStore_EncryptedAtRest(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "users.json")
	key := []byte("thisis32byteslongsecretkey123456")

	fs, err := NewFileStore(path, key)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := fs.Save(testUsers()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(raw), "a@x.com") {
		t.Error("Store file should not contain plaintext records")
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[0].Email != "a@x.com" {
		t.Errorf("Encrypted round-trip mismatch: %+v", got)
	}

	// A different key must not decrypt the collection.
	wrong, _ := NewFileStore(path, []byte("anotherkeyanotherkeyanotherkey12"))
	if _, err := wrong.Load(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable with wrong key, got %v", err)
	}
}

func TestMemStore_FailSaves(t *testing.T) {
	ms := NewMemStore(testUsers())
	ms.FailSaves = true

	if err := ms.Save(nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}

	users, _ := ms.Load()
	if len(users) != 2 {
		t.Errorf("Failed save must not mutate the collection, got %d", len(users))
	}
}

func TestMemStore_LoadReturnsCopy(t *testing.T) {
	ms := NewMemStore(testUsers())

	users, _ := ms.Load()
	users[0].Email = "mutated@x.com"

	again, _ := ms.Load()
	if again[0].Email != "a@x.com" {
		t.Error("Load must return a copy, not the internal slice")
	}
}

func TestMigrate(t *testing.T) {
	tmpDir := t.TempDir()

	src := NewMemStore(testUsers())
	dst, err := NewFileStore(filepath.Join(tmpDir, "users.json"), []byte("thisis32byteslongsecretkey123456"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := Migrate(src, dst); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	got, err := dst.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[1].ID != "u2" {
		t.Errorf("Migration mismatch: %+v", got)
	}
}
