package sdk

import (
	"os"
	"path/filepath"

	"github.com/celerix-dev/celerix-directory/internal/directory"
	"github.com/celerix-dev/celerix-directory/internal/store"
)

// New initializes a directory handle based on the environment.
// It returns the interface, so the app doesn't care if it's local or remote.
func New(dataDir string) (UserDirectory, error) {
	// 1. Check if a remote directory is defined in environment variables
	if remoteAddr := os.Getenv("CELERIX_DIR_ADDR"); remoteAddr != "" {
		client, err := Connect(remoteAddr)
		if err == nil {
			if token := os.Getenv("CELERIX_DIR_TOKEN"); token != "" {
				client.SetToken(token)
			}
			return client, nil
		}
		// Connection failed; fall back to embedded mode below.
	}

	// 2. Embedded mode: the same service the daemon runs, inside this process.
	fs, err := store.NewFileStore(filepath.Join(dataDir, "users.json"), nil)
	if err != nil {
		return nil, err
	}
	return NewEmbedded(directory.New(fs)), nil
}
