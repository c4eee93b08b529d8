// Package config loads worktimer settings from a YAML file overlaid with
// WORKTIMER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "worktimer"
	configFileName = "config.yaml"

	// DefaultHistoryFile is the history location relative to the home directory.
	DefaultHistoryFile = ".timer_data"
)

// StoreKind selects the history backend.
type StoreKind string

const (
	StoreCSV    StoreKind = "csv"
	StoreSQLite StoreKind = "sqlite"
)

// ParseStoreKind validates a backend name.
func ParseStoreKind(s string) (StoreKind, error) {
	switch k := StoreKind(strings.ToLower(strings.TrimSpace(s))); k {
	case StoreCSV, StoreSQLite:
		return k, nil
	default:
		return "", fmt.Errorf("unknown store %q (want csv or sqlite)", s)
	}
}

// Config holds all runtime settings.
type Config struct {
	HistoryFile string    `yaml:"history_file" env:"WORKTIMER_HISTORY_FILE"`
	Store       StoreKind `yaml:"store" env:"WORKTIMER_STORE"`
	DBPath      string    `yaml:"db_path" env:"WORKTIMER_DB"`
	PauseKey    string    `yaml:"pause_key" env:"WORKTIMER_PAUSE_KEY"`
	QuitKey     string    `yaml:"quit_key" env:"WORKTIMER_QUIT_KEY"`
	LogLevel    string    `yaml:"log_level" env:"WORKTIMER_LOG_LEVEL"`
	LogUseCases bool      `yaml:"log_use_cases" env:"WORKTIMER_LOG_USE_CASES"`
}

// Default returns the built-in settings before any file or env overlay.
func Default() Config {
	return Config{
		Store:    StoreCSV,
		PauseKey: "p",
		QuitKey:  "q",
		LogLevel: "warn",
	}
}

// Loader reads configuration. Zero-valued fields fall back to the process
// environment and the operating system's directories.
type Loader struct {
	// Path of the YAML file. Empty means WORKTIMER_CONFIG or the user
	// config directory.
	Path string
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
	// HomeDir replaces os.UserHomeDir when non-nil.
	HomeDir func() (string, error)
}

// Load reads the YAML file if present, applies environment overrides, and
// resolves default paths. A missing file is not an error.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	path, err := l.configPath()
	if err == nil {
		if err := readYAML(path, &cfg); err != nil {
			return cfg, err
		}
	}

	opts := env.Options{Environment: l.Environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Store == "" {
		cfg.Store = StoreCSV
	}
	if cfg.Store, err = ParseStoreKind(string(cfg.Store)); err != nil {
		return cfg, err
	}
	if cfg.PauseKey == "" {
		cfg.PauseKey = "p"
	}
	if cfg.QuitKey == "" {
		cfg.QuitKey = "q"
	}
	if cfg.PauseKey == cfg.QuitKey {
		return cfg, fmt.Errorf("pause and quit keys must differ (both %q)", cfg.PauseKey)
	}

	home, homeErr := l.homeDir()
	cfg.HistoryFile = expandHome(cfg.HistoryFile, home, homeErr)
	cfg.DBPath = expandHome(cfg.DBPath, home, homeErr)
	if homeErr == nil {
		if cfg.HistoryFile == "" {
			cfg.HistoryFile = filepath.Join(home, DefaultHistoryFile)
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(home, "."+appName, appName+".db")
		}
	}
	return cfg, nil
}

// HistoryPath returns the CSV history location.
func (c Config) HistoryPath() (string, error) {
	if c.HistoryFile == "" {
		return "", fmt.Errorf("locating history file: %w", domain.ErrMissingHomeDirectory)
	}
	return c.HistoryFile, nil
}

// DatabasePath returns the SQLite history location.
func (c Config) DatabasePath() (string, error) {
	if c.DBPath == "" {
		return "", fmt.Errorf("locating history database: %w", domain.ErrMissingHomeDirectory)
	}
	return c.DBPath, nil
}

func (l Loader) configPath() (string, error) {
	if l.Path != "" {
		return l.Path, nil
	}
	if v := l.getenv("WORKTIMER_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func (l Loader) getenv(key string) string {
	if l.Environment != nil {
		return l.Environment[key]
	}
	return os.Getenv(key)
}

func (l Loader) homeDir() (string, error) {
	if l.HomeDir != nil {
		return l.HomeDir()
	}
	return os.UserHomeDir()
}

func readYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

// expandHome replaces a leading "~/" with home. Such a path is dropped when
// the home directory is unknown.
func expandHome(p, home string, homeErr error) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	if homeErr != nil {
		return ""
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
