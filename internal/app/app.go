package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/clusterfav/internal/clusterid"
	"github.com/five82/clusterfav/internal/config"
	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/logging"
	"github.com/five82/clusterfav/internal/persist"
	"github.com/five82/clusterfav/internal/prefs"
	"github.com/five82/clusterfav/internal/ui"
)

// ErrNoClusterInURL is returned when --url does not carry a cluster id.
var ErrNoClusterInURL = errors.New("no cluster id in url")

// Options configure a clusterfav session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/clusterfav/prefs.toml
	Cluster    string // cluster id, renderer hostname or element id
	URL        string // renderer URL to detect the cluster from
	LogLevel   string // empty uses the config level (UI) or warn (CLI)

	// Interactive sends logs to the log file next to the store instead of
	// LogOutput so they do not corrupt the terminal UI.
	Interactive bool
	LogOutput   io.Writer
}

// Session holds the opened store and everything around it. Close must be
// called to flush pending writes.
type Session struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Store     *favorites.Store

	logFile *os.File
	watcher <-chan struct{}
}

// Open loads configuration, sets up logging, opens the store and activates
// the resolved cluster.
func Open(ctx context.Context, opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	s := &Session{
		Config:    cfg,
		PrefsPath: opts.PrefsPath,
		Prefs:     prefs.Load(opts.PrefsPath),
	}

	if err := s.initLogging(opts); err != nil {
		return nil, err
	}

	clusterID, err := ResolveCluster(opts.Cluster, opts.URL, s.Prefs.LastCluster)
	if err != nil {
		s.closeLog()
		return nil, err
	}

	sink, err := persist.Open(cfg.Backend, cfg.StorePath())
	if err != nil {
		s.closeLog()
		return nil, fmt.Errorf("open favorites: %w", err)
	}

	store, err := favorites.Open(ctx, sink)
	if err != nil {
		_ = sink.Close()
		s.closeLog()
		return nil, fmt.Errorf("open favorites: %w", err)
	}
	s.Store = store
	s.watcher = StartWatcher(ctx, store, opts.PrefsPath)

	if clusterID != "" {
		store.SetCurrentCluster(clusterID)
	}

	log := logging.WithComponent("app")
	log.Info().
		Str("store", sink.Location()).
		Str("backend", string(cfg.Backend)).
		Str("cluster_id", clusterID).
		Int("items", store.ItemsCount()).
		Int("groups", store.GroupsCount()).
		Msg("favorites opened")

	return s, nil
}

// Close drains pending saves and releases the store and log file.
func (s *Session) Close(ctx context.Context) error {
	var err error
	if s.Store != nil {
		err = s.Store.Close(ctx)
	}
	if s.watcher != nil {
		select {
		case <-s.watcher:
		case <-ctx.Done():
		}
	}
	s.closeLog()
	return err
}

// RunUI shows the favorites page until the user exits.
func (s *Session) RunUI(ctx context.Context) (ui.Result, error) {
	return ui.Run(ctx, ui.Options{
		Store:     s.Store,
		ThemeName: s.Prefs.Theme,
		PrefsPath: s.PrefsPath,
	})
}

// ResolveCluster picks the active cluster: an explicit id first, then the
// id detected from url, then the last cluster remembered in prefs.
func ResolveCluster(cluster, url, last string) (string, error) {
	if c := strings.TrimSpace(cluster); c != "" {
		return clusterid.Normalize(c), nil
	}
	if strings.TrimSpace(url) != "" {
		id, ok := clusterid.Detect(clusterid.Sources{URL: url})
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNoClusterInURL, url)
		}
		return id, nil
	}
	return last, nil
}

func (s *Session) initLogging(opts Options) error {
	level := opts.LogLevel
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}

	if opts.Interactive {
		if level == "" {
			level = s.Config.LogLevel
		}
		path := s.Config.LogPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		out = f
	} else if level == "" {
		level = string(logging.WarnLevel)
	}

	logging.Init(logging.Config{
		Level:      logging.ParseLevel(level),
		JSONOutput: s.Config.LogJSON,
		Output:     out,
		NoColor:    s.logFile != nil,
	})
	return nil
}

func (s *Session) closeLog() {
	if s.logFile != nil {
		_ = s.logFile.Close()
		s.logFile = nil
	}
}
