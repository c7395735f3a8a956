package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketFavorites = []byte("favorites")
	keySnapshot     = []byte("snapshot")
)

// BoltSink keeps the snapshot under a single key of a bbolt database.
type BoltSink struct {
	db   *bolt.DB
	path string
}

// NewBoltSink opens (or creates) the database at path.
func NewBoltSink(path string) (*BoltSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create favorites dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open favorites database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketFavorites); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketFavorites, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltSink{db: db, path: path}, nil
}

// Load returns a copy of the stored snapshot, or nil if none was saved.
func (s *BoltSink) Load(_ context.Context) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketFavorites).Get(keySnapshot)
		if v != nil {
			// bbolt memory is only valid inside the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	return data, nil
}

// Save replaces the stored snapshot.
func (s *BoltSink) Save(_ context.Context, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).Put(keySnapshot, data)
	})
	if err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *BoltSink) Close() error {
	return s.db.Close()
}

// Location returns the database path.
func (s *BoltSink) Location() string { return s.path }
