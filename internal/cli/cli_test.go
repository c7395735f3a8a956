package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/clusterfav/internal/app"
	"github.com/five82/clusterfav/internal/favorites"
)

const (
	clusterA = "0123456789abcdef0123456789abcdef"
	clusterB = "fedcba9876543210fedcba9876543210"
)

type cliEnv struct {
	configPath string
	prefsPath  string
	dataDir    string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	env := cliEnv{
		configPath: filepath.Join(dir, "config.toml"),
		prefsPath:  filepath.Join(dir, "prefs.toml"),
		dataDir:    filepath.Join(dir, "data"),
	}
	content := "data_dir = \"" + filepath.ToSlash(env.dataDir) + "\"\nlog_level = \"error\"\n"
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))
	return env
}

// captureOutput routes pterm and command output into one buffer.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableStyling()
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	})
	return &buf
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := captureOutput(t)

	root := NewRootCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", e.configPath, "--prefs", e.prefsPath, "--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func (e cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func (e cliEnv) snapshot(t *testing.T) favorites.Snapshot {
	t.Helper()
	out := e.mustRun(t, "export")
	snap, err := favorites.Decode([]byte(out))
	require.NoError(t, err)
	return snap
}

func itemByPath(t *testing.T, snap favorites.Snapshot, path string) favorites.FavoriteItem {
	t.Helper()
	for _, it := range snap.Items {
		if it.Path == path {
			return it
		}
	}
	t.Fatalf("no favorite with path %s", path)
	return favorites.FavoriteItem{}
}

func TestAddListRemove(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods", "--icon", "view_module")
	assert.Contains(t, out, "Added Pods")

	// The cluster is remembered for later invocations.
	out = env.mustRun(t, "list")
	assert.Contains(t, out, "Pods")
	assert.Contains(t, out, "/pods")

	item := itemByPath(t, env.snapshot(t), "/pods")
	assert.Equal(t, clusterA, item.ClusterID)
	assert.Equal(t, "view_module", item.Icon)

	out = env.mustRun(t, "remove", item.ID)
	assert.Contains(t, out, "Removed Pods")
	assert.Empty(t, env.snapshot(t).Items)

	_, err := env.run(t, "remove", item.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestAddWithoutClusterFails(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "add", "Pods", "/pods")
	assert.ErrorIs(t, err, ErrNoCluster)

	out := env.mustRun(t, "list")
	assert.Contains(t, out, "no active cluster")
}

func TestAddDedupesUnlessAllowed(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods")

	out := env.mustRun(t, "add", "Pods again", "/pods")
	assert.Contains(t, out, "already a favorite")
	assert.Len(t, env.snapshot(t).Items, 1)

	env.mustRun(t, "add", "Pods again", "/pods", "--allow-duplicate")
	assert.Len(t, env.snapshot(t).Items, 2)
}

func TestClusterFromURL(t *testing.T) {
	env := newCLIEnv(t)

	env.mustRun(t, "--url", "https://"+clusterB+".renderer.freelens.app/c/overview", "add", "Nodes", "/nodes")
	assert.Equal(t, clusterB, itemByPath(t, env.snapshot(t), "/nodes").ClusterID)

	_, err := env.run(t, "--url", "https://example.com/", "list")
	assert.ErrorIs(t, err, app.ErrNoClusterInURL)

	_, err = env.run(t, "--url", "https://example.com/", "--cluster", clusterA, "list")
	assert.Error(t, err)
}

func TestClustersArePartitioned(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods")
	env.mustRun(t, "--cluster", clusterB, "add", "Nodes", "/nodes")

	out := env.mustRun(t, "--cluster", clusterA, "list")
	assert.Contains(t, out, "/pods")
	assert.NotContains(t, out, "/nodes")

	out = env.mustRun(t, "list", "--all")
	assert.Contains(t, out, clusterA)
	assert.Contains(t, out, clusterB)

	out = env.mustRun(t, "--cluster", clusterB, "check", "/pods")
	assert.Contains(t, out, "is not a favorite")
	out = env.mustRun(t, "--cluster", clusterB, "check", "/nodes")
	assert.Contains(t, out, "is a favorite")
}

func TestUpdateFavorite(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods")
	item := itemByPath(t, env.snapshot(t), "/pods")

	out := env.mustRun(t, "update", item.ID, "--title", "All pods", "--order", "3")
	assert.Contains(t, out, "Favorite updated")
	assert.Contains(t, out, "All pods")

	got := itemByPath(t, env.snapshot(t), "/pods")
	assert.Equal(t, "All pods", got.Title)
	require.NotNil(t, got.Order)
	assert.Equal(t, 3, *got.Order)
	assert.True(t, got.CreatedAt.Equal(item.CreatedAt))

	env.mustRun(t, "update", item.ID, "--clear-order")
	assert.False(t, itemByPath(t, env.snapshot(t), "/pods").HasOrder())

	_, err := env.run(t, "update", item.ID)
	assert.ErrorContains(t, err, "nothing to update")
}

func TestReorder(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods")
	env.mustRun(t, "add", "Nodes", "/nodes")
	snap := env.snapshot(t)
	pods := itemByPath(t, snap, "/pods")
	nodes := itemByPath(t, snap, "/nodes")

	out := env.mustRun(t, "reorder", nodes.ID, pods.ID)
	assert.Contains(t, out, "Reordered 2 favorites")

	items := favorites.ClusterItems(env.snapshot(t).Items, clusterA)
	require.Len(t, items, 2)
	assert.Equal(t, nodes.ID, items[0].ID)
	assert.Equal(t, pods.ID, items[1].ID)
}

func TestGroupLifecycle(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun(t, "--cluster", clusterA, "group", "add", "Work")
	assert.Contains(t, out, "Created group Work")

	env.mustRun(t, "add", "Pods", "/pods", "--group", "Work")
	env.mustRun(t, "add", "Nodes", "/nodes")

	snap := env.snapshot(t)
	require.Len(t, snap.Groups, 1)
	work := snap.Groups[0]
	assert.Equal(t, clusterA, work.ClusterID)
	assert.Equal(t, work.ID, itemByPath(t, snap, "/pods").GroupID)

	out = env.mustRun(t, "group", "list")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "true")

	out = env.mustRun(t, "group", "toggle", "Work")
	assert.Contains(t, out, "collapsed")
	assert.False(t, env.snapshot(t).Groups[0].Expanded)

	nodes := itemByPath(t, snap, "/nodes")
	env.mustRun(t, "group", "assign", nodes.ID, work.ID)
	assert.Equal(t, work.ID, itemByPath(t, env.snapshot(t), "/nodes").GroupID)

	env.mustRun(t, "group", "unassign", nodes.ID)
	assert.Empty(t, itemByPath(t, env.snapshot(t), "/nodes").GroupID)

	out = env.mustRun(t, "group", "remove", "Work")
	assert.Contains(t, out, "1 favorites ungrouped")
	snap = env.snapshot(t)
	assert.Empty(t, snap.Groups)
	assert.Empty(t, itemByPath(t, snap, "/pods").GroupID)

	_, err := env.run(t, "add", "Secrets", "/secrets", "--group", "Missing")
	assert.ErrorContains(t, err, "group Missing not found")
}

func TestGroupRemoveWithItems(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun(t, "--cluster", clusterA, "group", "add", "Scratch")
	env.mustRun(t, "add", "Pods", "/pods", "--group", "Scratch")
	env.mustRun(t, "add", "Nodes", "/nodes")

	out := env.mustRun(t, "group", "remove", "Scratch", "--items")
	assert.Contains(t, out, "Deleted group Scratch and 1 favorites")

	snap := env.snapshot(t)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "/nodes", snap.Items[0].Path)
}

func TestExportImport(t *testing.T) {
	src := newCLIEnv(t)
	src.mustRun(t, "--cluster", clusterA, "group", "add", "Work")
	src.mustRun(t, "add", "Pods", "/pods", "--group", "Work")

	file := filepath.Join(t.TempDir(), "favorites.json")
	out := src.mustRun(t, "export", "-o", file)
	assert.Contains(t, out, "Exported to")

	dst := newCLIEnv(t)
	out = dst.mustRun(t, "import", file)
	assert.Contains(t, out, "Imported 1 favorites and 1 groups")

	out = dst.mustRun(t, "--cluster", clusterA, "list")
	assert.Contains(t, out, "/pods")
	assert.Contains(t, out, "Work")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"items": 5}`), 0o644))
	_, err := dst.run(t, "import", bad)
	assert.ErrorContains(t, err, "decode favorites")
	assert.Len(t, dst.snapshot(t).Items, 1)
}

func TestExportImportYAML(t *testing.T) {
	src := newCLIEnv(t)
	src.mustRun(t, "--cluster", clusterA, "add", "Pods", "/pods")

	out := src.mustRun(t, "export", "--format", "yaml")
	assert.Contains(t, out, "items:")
	assert.Contains(t, out, "path: /pods")

	file := filepath.Join(t.TempDir(), "favorites.yml")
	src.mustRun(t, "export", "-o", file)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clusterId: "+clusterA)

	dst := newCLIEnv(t)
	out = dst.mustRun(t, "import", file)
	assert.Contains(t, out, "Imported 1 favorites and 0 groups")
	assert.Equal(t, "/pods", itemByPath(t, dst.snapshot(t), "/pods").Path)

	_, err = dst.run(t, "export", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		format, file string
		want         Format
	}{
		{"", "", FormatJSON},
		{"", "out.json", FormatJSON},
		{"", "out.YAML", FormatYAML},
		{"", "out.yml", FormatYAML},
		{"json", "out.yaml", FormatJSON},
		{"yml", "", FormatYAML},
	}
	for _, tt := range tests {
		got, err := parseFormat(tt.format, tt.file)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "format=%q file=%q", tt.format, tt.file)
	}
	_, err := parseFormat("toml", "")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun(t, "path")
	want := filepath.Join(env.dataDir, "extension-store", "freelens-favorites-extension", "favorites-store.json")
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestLogs(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun(t, "logs")
	assert.Contains(t, out, "No log lines")

	logPath := filepath.Join(env.dataDir, "extension-store", "freelens-favorites-extension", "clusterfav.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0o755))
	require.NoError(t, os.WriteFile(logPath, []byte("one component=app\ntwo component=persist\nthree component=app\n"), 0o644))

	out = env.mustRun(t, "logs", "-n", "1")
	assert.Equal(t, "three component=app", strings.TrimSpace(out))

	out = env.mustRun(t, "logs", "--grep", "persist")
	assert.Equal(t, "two component=persist", strings.TrimSpace(out))
}
