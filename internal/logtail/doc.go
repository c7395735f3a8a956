// Package logtail reads the tail of the clusterfav log file.
//
// The terminal UI cannot log to the terminal it draws on, so it writes to
// clusterfav.log next to the favorites store. Tail returns the last lines of
// that file, optionally filtered by a case-insensitive substring, using a
// ring buffer of the requested size so large files are scanned once without
// being held in memory.
//
//	lines, err := logtail.Tail(cfg.LogPath(), logtail.Options{Lines: 50, Match: "persist"})
package logtail
