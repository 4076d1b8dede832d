package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OpenFile opens an append-only log file, creating its directory.
// Terminal mode logs here because the screen owns stdout and stderr.
func OpenFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
