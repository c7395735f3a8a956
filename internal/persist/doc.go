// Package persist moves favorites snapshots between memory and disk.
//
// # Sinks
//
// A Sink stores one encoded snapshot. Three implementations exist:
//
//   - FileSink: a single pretty-printed JSON file, the format the dashboard
//     extension store uses (favorites-store.json)
//   - BoltSink: the same bytes under one key of a bbolt database, for users
//     who prefer a crash-safe single-file database over a plain JSON file
//   - SQLiteSink: the same bytes in one row of a SQLite database
//
// Sinks do not interpret the bytes they store. Encoding belongs to the
// favorites package so this package does not import it.
//
// # Writer
//
// Writer applies saves on a background goroutine so a mutation never waits on
// disk. Saves are applied in submission order; when several are queued only
// the newest bytes are written and every queued Pending resolves with that
// write's result. Failures are logged and recorded on the Pending, never
// returned to the mutating caller.
//
// # Paths
//
// DefaultDataDir follows the dashboard's per-OS user-data convention:
//
//	windows: %APPDATA%\Freelens
//	darwin:  ~/Library/Application Support/Freelens
//	other:   ~/.config/Freelens
//
// and StorePath appends extension-store/<extension>/favorites-store.json.
package persist
