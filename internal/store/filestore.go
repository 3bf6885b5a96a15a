package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/celerix-dev/celerix-directory/internal/vault"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

// FileStore keeps the user collection in a single JSON file. Writes go to a
// temporary file first and are swapped in with an atomic rename, so a crash
// leaves either the old collection or the new one, never a torn file.
//
// When a 32-byte master key is set, the JSON blob is encrypted with AES-GCM
// before it touches disk.
type FileStore struct {
	path      string
	masterKey []byte
}

// NewFileStore initializes a file store at path, creating the parent
// directory if needed. masterKey may be nil for plaintext storage.
func NewFileStore(path string, masterKey []byte) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &FileStore{path: path, masterKey: masterKey}, nil
}

// Load reads the whole collection. A missing file yields an empty collection.
func (f *FileStore) Load() ([]schema.UserRecord, error) {
	content, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return []schema.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if f.masterKey != nil {
		plain, err := vault.Decrypt(string(content), f.masterKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		content = []byte(plain)
	}

	var users []schema.UserRecord
	if err := json.Unmarshal(content, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return users, nil
}

// Save writes the whole collection, replacing prior content.
func (f *FileStore) Save(users []schema.UserRecord) error {
	bytes, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if f.masterKey != nil {
		cipher, err := vault.Encrypt(string(bytes), f.masterKey)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		bytes = []byte(cipher)
	}

	tempPath := f.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Atomic rename: the durable file is either the old or the new
	// collection, never a partial write.
	if err := os.Rename(tempPath, f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
