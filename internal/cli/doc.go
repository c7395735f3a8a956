// Package cli implements the clusterfav command line.
//
// Every command opens an app.Session for the duration of the call, runs one
// store operation and waits for the resulting save before returning, so a
// command that succeeds has reached disk. The root command without a
// subcommand opens the interactive favorites page.
//
// Output goes through pterm: tables for listings, Success/Info/Warning
// prefixed lines for mutations. Raw output that other tools consume
// (export, path, logs, the selected favorite's path) is written to the
// command's stdout unstyled.
package cli
