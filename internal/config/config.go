package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/storage"
)

// Config holds the resolved settings for one run.
type Config struct {
	Storage     string
	DataDir     string
	CatalogPath string // empty means the embedded trip
	DayPolicy   nav.DayPolicy
	Reconcile   checklist.Reconcile
	LogLevel    string
	LogFile     string
}

const (
	defaultConfigPath = "~/.config/wayfarer/config.toml"
	defaultDataDir    = "~/.local/share/wayfarer"
	defaultStorage    = storage.BackendFile
)

type rawConfig struct {
	Storage     string `toml:"storage"`
	DataDir     string `toml:"data_dir"`
	CatalogPath string `toml:"catalog_path"`
	DayPolicy   string `toml:"day_policy"`
	Reconcile   string `toml:"reconcile"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Storage:   defaultStorage,
		DataDir:   mustExpand(defaultDataDir),
		DayPolicy: nav.DayPolicyPersistent,
		Reconcile: checklist.ReconcileMerge,
	}
}

// Load locates and parses the wayfarer config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve()
}

func (raw rawConfig) resolve() (Config, error) {
	cfg := Default()

	if v := strings.ToLower(strings.TrimSpace(raw.Storage)); v != "" {
		switch v {
		case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
			cfg.Storage = v
		default:
			return Config{}, fmt.Errorf("config: unknown storage %q", raw.Storage)
		}
	}

	if v := strings.TrimSpace(raw.DataDir); v != "" {
		dir, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: data_dir: %w", err)
		}
		cfg.DataDir = dir
	}

	if v := strings.TrimSpace(raw.CatalogPath); v != "" {
		p, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: catalog_path: %w", err)
		}
		cfg.CatalogPath = p
	}

	policy, ok := nav.ParseDayPolicy(raw.DayPolicy)
	if !ok {
		return Config{}, fmt.Errorf("config: unknown day_policy %q", raw.DayPolicy)
	}
	cfg.DayPolicy = policy

	reconcile, ok := checklist.ParseReconcile(strings.ToLower(strings.TrimSpace(raw.Reconcile)))
	if !ok {
		return Config{}, fmt.Errorf("config: unknown reconcile %q", raw.Reconcile)
	}
	cfg.Reconcile = reconcile

	cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	return cfg, nil
}

// Overrides are command-line values that replace file settings when set.
type Overrides struct {
	Storage   string
	DayPolicy string
	LogLevel  string
}

// Apply validates o and writes its non-empty fields into c.
func (c *Config) Apply(o Overrides) error {
	raw := rawConfig{
		Storage:   o.Storage,
		DayPolicy: o.DayPolicy,
	}
	resolved, err := raw.resolve()
	if err != nil {
		return err
	}
	if strings.TrimSpace(o.Storage) != "" {
		c.Storage = resolved.Storage
	}
	if strings.TrimSpace(o.DayPolicy) != "" {
		c.DayPolicy = resolved.DayPolicy
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// StorageOptions returns the options for storage.Open.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{Backend: c.Storage, Dir: c.DataDir}
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
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
