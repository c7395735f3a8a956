// Package config loads clusterfav's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/clusterfav/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	data_dir = "~/.config/Freelens"         # dashboard user-data directory
//	extension_name = "freelens-favorites-extension"
//	backend = "json"                        # "bolt" or "sqlite"
//	log_level = "info"
//	log_json = false
//
// All fields are optional. The default data_dir is the dashboard's per-OS
// user-data directory (see persist.DefaultDataDir), so favorites are shared
// with the dashboard extension out of the box.
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors only for
// unreadable files and TOML parse failures.
package config
