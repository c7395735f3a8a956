package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirFor(t *testing.T) {
	env := map[string]string{"APPDATA": filepath.FromSlash("/appdata")}
	getenv := func(k string) string { return env[k] }
	home := filepath.FromSlash("/home/u")

	assert.Equal(t, filepath.Join("/appdata", "Freelens"), dataDirFor("windows", home, getenv))
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "Freelens"), dataDirFor("darwin", home, getenv))
	assert.Equal(t, filepath.Join(home, ".config", "Freelens"), dataDirFor("linux", home, getenv))
}

func TestStorePath(t *testing.T) {
	dir := filepath.FromSlash("/data")

	assert.Equal(t,
		filepath.Join(dir, "extension-store", DefaultExtensionName, StoreFileName),
		StorePath(dir, "", BackendJSON))
	assert.Equal(t,
		filepath.Join(dir, "extension-store", "custom", BoltFileName),
		StorePath(dir, "custom", BackendBolt))
	assert.Equal(t,
		filepath.Join(dir, "extension-store", DefaultExtensionName, SQLiteFileName),
		StorePath(dir, "", BackendSQLite))
}
