package store

import "fmt"

// Migrate copies the full collection from a source store to a destination
// store. This works for:
// - plaintext file -> encrypted file (enabling at-rest encryption)
// - file -> memory (offline inspection)
func Migrate(src, dst Store) error {
	users, err := src.Load()
	if err != nil {
		return fmt.Errorf("failed to load source collection: %w", err)
	}
	if err := dst.Save(users); err != nil {
		return fmt.Errorf("failed to save destination collection: %w", err)
	}
	return nil
}
