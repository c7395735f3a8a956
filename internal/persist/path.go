package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// DefaultExtensionName is the extension-store directory the dashboard
	// extension used.
	DefaultExtensionName = "freelens-favorites-extension"

	// StoreFileName is the JSON snapshot file name.
	StoreFileName = "favorites-store.json"

	// BoltFileName is the database file name for the bolt backend.
	BoltFileName = "favorites-store.db"

	// SQLiteFileName is the database file name for the sqlite backend.
	SQLiteFileName = "favorites-store.sqlite"

	appDirName = "Freelens"
)

// DefaultDataDir returns the dashboard's user-data directory for this OS.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil && runtime.GOOS != "windows" {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return dataDirFor(runtime.GOOS, home, os.Getenv), nil
}

func dataDirFor(goos, home string, getenv func(string) string) string {
	switch goos {
	case "windows":
		return filepath.Join(getenv("APPDATA"), appDirName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDirName)
	default:
		return filepath.Join(home, ".config", appDirName)
	}
}

// StorePath returns the snapshot location for backend under dataDir.
func StorePath(dataDir, extensionName string, backend Backend) string {
	if extensionName == "" {
		extensionName = DefaultExtensionName
	}
	name := StoreFileName
	switch backend {
	case BackendBolt:
		name = BoltFileName
	case BackendSQLite:
		name = SQLiteFileName
	}
	return filepath.Join(dataDir, "extension-store", extensionName, name)
}
