package persist

import "context"

// Sink stores and retrieves one encoded favorites snapshot.
type Sink interface {
	// Load returns the stored bytes, or nil when nothing has been saved yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored bytes.
	Save(ctx context.Context, data []byte) error
	// Close releases resources held by the sink.
	Close() error
	// Location describes where the data lives, for display.
	Location() string
}

// Backend names a Sink implementation in configuration.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend maps a config value onto a Backend, defaulting to JSON.
func ParseBackend(s string) Backend {
	switch b := Backend(s); b {
	case BackendBolt, BackendSQLite:
		return b
	}
	return BackendJSON
}

// Open returns the sink for backend rooted at path. For BackendJSON path is
// the JSON file; for BackendBolt and BackendSQLite it is the database file.
func Open(backend Backend, path string) (Sink, error) {
	switch backend {
	case BackendBolt:
		return NewBoltSink(path)
	case BackendSQLite:
		return NewSQLiteSink(path)
	default:
		return NewFileSink(path), nil
	}
}
