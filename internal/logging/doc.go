// Package logging configures the process-wide zerolog logger.
//
// The terminal UI owns the screen while it runs, so callers pick the output:
// the UI writes to a log file under the data directory, the command line
// writes to stderr. Packages obtain a scoped logger with WithComponent and
// never configure output themselves.
package logging
