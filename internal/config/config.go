// Package config loads the playlist tool settings from
// ~/.config/playlist-tool/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds user settings shared by the GUI and the CLI.
type Config struct {
	// SaveDir overrides the default output directory for saved playlists.
	SaveDir string
	// LogLevel is used when no level is given on the command line or environment.
	LogLevel string
	// HistoryDB is the SQLite database of recently opened playlists.
	HistoryDB string
	// HistoryLimit is how many recent playlists the GUI offers.
	HistoryLimit int
	// RecordHistory enables recording opened playlists from the CLI.
	RecordHistory bool
}

const (
	defaultConfigPath   = "~/.config/playlist-tool/config.toml"
	defaultHistoryDB    = "~/.local/share/playlist-tool/history.db"
	defaultHistoryLimit = 10
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		HistoryDB:     mustExpand(defaultHistoryDB),
		HistoryLimit:  defaultHistoryLimit,
		RecordHistory: true,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SaveDir       string `toml:"save_dir"`
		LogLevel      string `toml:"log_level"`
		HistoryDB     string `toml:"history_db"`
		HistoryLimit  *int   `toml:"history_limit"`
		RecordHistory *bool  `toml:"record_history"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.SaveDir); dir != "" {
		cfg.SaveDir = mustExpand(dir)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if db := strings.TrimSpace(raw.HistoryDB); db != "" {
		cfg.HistoryDB = mustExpand(db)
	}
	if raw.HistoryLimit != nil && *raw.HistoryLimit > 0 {
		cfg.HistoryLimit = *raw.HistoryLimit
	}
	if raw.RecordHistory != nil {
		cfg.RecordHistory = *raw.RecordHistory
	}

	return cfg, nil
}

// Ensure loads the config at path, first writing the defaults there when the
// file does not exist yet.
func Ensure(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(resolved); errors.Is(err, os.ErrNotExist) {
		if err := Save(resolved, Default()); err != nil {
			return Config{}, err
		}
	}
	return Load(resolved)
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	raw := struct {
		SaveDir       string `toml:"save_dir,omitempty"`
		LogLevel      string `toml:"log_level,omitempty"`
		HistoryDB     string `toml:"history_db"`
		HistoryLimit  int    `toml:"history_limit"`
		RecordHistory bool   `toml:"record_history"`
	}{
		SaveDir:       cfg.SaveDir,
		LogLevel:      cfg.LogLevel,
		HistoryDB:     cfg.HistoryDB,
		HistoryLimit:  cfg.HistoryLimit,
		RecordHistory: cfg.RecordHistory,
	}

	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
