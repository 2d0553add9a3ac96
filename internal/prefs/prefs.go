// Package prefs persists wayfarer's display preferences.
// Preferences are stored in ~/.config/wayfarer/prefs.toml and never block
// startup: any problem reading them yields the defaults.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/five82/wayfarer/internal/logging"
)

// Prefs holds the user's display preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// PowerBankDetails opens the packing page with the power bank rules expanded.
	PowerBankDetails bool `toml:"power_bank_details"`
}

const (
	defaultPrefsPath = "~/.config/wayfarer/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Missing, unreadable or
// malformed files yield Default(); only the last two are logged.
func Load(path string) Prefs {
	log := logging.Named("prefs")

	resolved, err := resolvePath(path)
	if err != nil {
		log.Debug("prefs path unresolved", zap.Error(err))
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("prefs unreadable", zap.String("path", resolved), zap.Error(err))
		}
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		log.Warn("prefs malformed", zap.String("path", resolved), zap.Error(err))
		return Default()
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
