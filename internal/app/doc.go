// Package app provides the composition root for clusterfav.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// snapshot sink and the favorites store. Both front ends (the cobra command
// line and the Bubble Tea favorites page) open a Session, work against its
// Store, and Close it so queued saves reach disk before the process exits.
//
// # Components
//
//   - app.go: Options, Session, Open/Close, cluster resolution and RunUI
//   - watcher.go: background goroutine that logs store changes and
//     remembers the active cluster in prefs
//
// # Startup
//
//	┌──────────────┐
//	│   Open()     │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/clusterfav/config.toml
//	       ├─────> prefs.Load()         Theme and last active cluster
//	       ├─────> logging.Init()       stderr (CLI) or log file (UI)
//	       ├─────> ResolveCluster()     --cluster, --url or last cluster
//	       ├─────> persist.Open()       JSON file or bbolt sink
//	       ├─────> favorites.Open()     Load snapshot, start writer
//	       └─────> StartWatcher()       Change log + last_cluster
//
// # Error Handling
//
// Fatal errors (returned from Open):
//   - Configuration file present but unparsable
//   - A --url without a recognizable cluster id
//   - The sink cannot be opened (for example a locked bbolt file)
//
// Recoverable errors (logged, session continues):
//   - Malformed favorites file (the store starts empty)
//   - Failed background saves
//   - Failed prefs writes
package app
