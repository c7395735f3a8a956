package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/clusterfav/internal/persist"
)

// Config captures where favorites live and how clusterfav logs.
type Config struct {
	DataDir       string
	ExtensionName string
	Backend       persist.Backend
	LogLevel      string
	LogJSON       bool
}

const (
	defaultConfigPath = "~/.config/clusterfav/config.toml"
	defaultLogLevel   = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir       string `toml:"data_dir"`
		ExtensionName string `toml:"extension_name"`
		Backend       string `toml:"backend"`
		LogLevel      string `toml:"log_level"`
		LogJSON       bool   `toml:"log_json"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if name := strings.TrimSpace(raw.ExtensionName); name != "" {
		cfg.ExtensionName = name
	}
	cfg.Backend = persist.ParseBackend(strings.ToLower(strings.TrimSpace(raw.Backend)))
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg.LogJSON = raw.LogJSON

	return cfg, nil
}

// StorePath returns the favorites file (or database) location.
func (c Config) StorePath() string {
	return persist.StorePath(c.DataDir, c.ExtensionName, c.Backend)
}

// LogPath returns the file the terminal UI logs to.
func (c Config) LogPath() string {
	return filepath.Join(filepath.Dir(c.StorePath()), "clusterfav.log")
}

func defaults() (Config, error) {
	dataDir, err := persist.DefaultDataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DataDir:       dataDir,
		ExtensionName: persist.DefaultExtensionName,
		Backend:       persist.BackendJSON,
		LogLevel:      defaultLogLevel,
	}, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and makes the path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
