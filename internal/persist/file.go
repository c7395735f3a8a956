package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink keeps the snapshot in a single JSON file. There is no temp file or
// rename: a crash mid-write can leave a truncated file, which the loader
// treats as empty.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path. Nothing touches the disk until
// the first Save.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Load reads the file. A missing file yields nil bytes and no error.
func (s *FileSink) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	return data, nil
}

// Save writes data, creating parent directories on demand.
func (s *FileSink) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

// Close is a no-op for files.
func (s *FileSink) Close() error { return nil }

// Location returns the file path.
func (s *FileSink) Location() string { return s.path }
