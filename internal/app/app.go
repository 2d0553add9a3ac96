package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/wayfarer/internal/catalog"
	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/config"
	"github.com/five82/wayfarer/internal/logging"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/prefs"
	"github.com/five82/wayfarer/internal/state"
	"github.com/five82/wayfarer/internal/storage"
	"github.com/five82/wayfarer/internal/ui"
)

// Options configure a wayfarer session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wayfarer/prefs.toml
	Overrides  config.Overrides
}

// Session is one run's wired collaborators.
type Session struct {
	Config    config.Config
	Trip      *catalog.Trip
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string

	kv storage.Store
}

// Open loads configuration, the trip and the saved packing list, and builds
// the session store.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Apply(opts.Overrides); err != nil {
		return nil, err
	}

	if err := logging.Initialize(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return nil, err
	}
	log := logging.Named("app")

	trip, err := loadTrip(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	kv, err := openStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	list := checklist.Load(kv, trip.PackingTemplate(),
		checklist.WithReconcile(cfg.Reconcile),
		checklist.WithLogger(logging.Named("checklist")),
	)
	router := nav.NewRouter(cfg.DayPolicy, trip.FirstDay())

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log.Debug("session ready",
		zap.String("storage", cfg.Storage),
		zap.String("day_policy", cfg.DayPolicy.String()),
		zap.String("reconcile", cfg.Reconcile.String()),
		zap.Bool("restored", list.Restored()),
		zap.Int("days", len(trip.Days)),
	)

	return &Session{
		Config:    cfg,
		Trip:      trip,
		Store:     state.New(trip, router, list),
		Prefs:     prefs.Load(prefsPath),
		PrefsPath: prefsPath,
		kv:        kv,
	}, nil
}

func loadTrip(path string) (*catalog.Trip, error) {
	if path == "" {
		trip, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load built-in trip: %w", err)
		}
		return trip, nil
	}
	trip, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load trip %s: %w", path, err)
	}
	return trip, nil
}

// openStorage opens the configured backend. A file store that cannot be
// created degrades to memory so the session still works; an unopenable
// SQLite database is fatal.
func openStorage(cfg config.Config, log *zap.Logger) (storage.Store, error) {
	kv, err := storage.Open(cfg.StorageOptions())
	if err == nil {
		return kv, nil
	}
	if cfg.Storage == storage.BackendSQLite {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Warn("storage unavailable, packing list will not be saved",
		zap.String("backend", cfg.Storage),
		zap.String("dir", cfg.DataDir),
		zap.Error(err),
	)
	return storage.NewMemKV(), nil
}

// RunTUI starts the interactive interface and blocks until it exits.
func (s *Session) RunTUI(ctx context.Context) error {
	return ui.Run(ctx, ui.Options{
		Store:     s.Store,
		Trip:      s.Trip,
		Prefs:     s.Prefs,
		PrefsPath: s.PrefsPath,
	})
}

// Close releases storage and flushes the logger.
func (s *Session) Close() error {
	defer logging.Sync()
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
