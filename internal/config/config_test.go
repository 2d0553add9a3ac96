package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/wayfarer/internal/checklist"
	"github.com/five82/wayfarer/internal/nav"
	"github.com/five82/wayfarer/internal/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage != storage.BackendFile {
		t.Fatalf("Storage = %q, want %q", cfg.Storage, storage.BackendFile)
	}
	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.DayPolicy != nav.DayPolicyPersistent || cfg.Reconcile != checklist.ReconcileMerge {
		t.Fatalf("policies = %v/%v, want persistent/merge", cfg.DayPolicy, cfg.Reconcile)
	}
	if cfg.CatalogPath != "" || cfg.LogLevel != "" || cfg.LogFile != "" {
		t.Fatalf("unexpected non-empty fields: %+v", cfg)
	}
}

func TestLoad_DefaultPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "wayfarer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`storage = "memory"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage != storage.BackendMemory {
		t.Fatalf("Storage = %q, want memory", cfg.Storage)
	}
	if DefaultPath() != filepath.Join(dir, "config.toml") {
		t.Fatalf("DefaultPath = %q", DefaultPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
storage = "  SQLite "
data_dir = "  ~/trips  "
catalog_path = "~/trips/japan.yaml"
day_policy = "reset"
reconcile = "Verbatim"
log_level = " debug "
log_file = "~/wayfarer.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage != storage.BackendSQLite {
		t.Fatalf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.DataDir != filepath.Join(home, "trips") {
		t.Fatalf("DataDir = %q, want it under HOME", cfg.DataDir)
	}
	if cfg.CatalogPath != filepath.Join(home, "trips", "japan.yaml") {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.DayPolicy != nav.DayPolicyReset {
		t.Fatalf("DayPolicy = %v, want reset", cfg.DayPolicy)
	}
	if cfg.Reconcile != checklist.ReconcileVerbatim {
		t.Fatalf("Reconcile = %v, want verbatim", cfg.Reconcile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}

	opts := cfg.StorageOptions()
	if opts.Backend != storage.BackendSQLite || opts.Dir != cfg.DataDir {
		t.Fatalf("StorageOptions = %+v", opts)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
storage = "   "
data_dir = ""
day_policy = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"storage", `storage = "redis"`, "unknown storage"},
		{"day policy", `day_policy = "sometimes"`, "unknown day_policy"},
		{"reconcile", `reconcile = "overwrite"`, "unknown reconcile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `storage = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestApply_OverridesOnlySetFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, "storage = \"sqlite\"\nlog_level = \"warn\"\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cfg.Apply(Overrides{DayPolicy: "reset"}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Storage != storage.BackendSQLite {
		t.Fatalf("Storage = %q, want sqlite kept", cfg.Storage)
	}
	if cfg.DayPolicy != nav.DayPolicyReset {
		t.Fatalf("DayPolicy = %v, want reset", cfg.DayPolicy)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn kept", cfg.LogLevel)
	}

	if err := cfg.Apply(Overrides{Storage: "memory", LogLevel: "debug"}); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Storage != storage.BackendMemory || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v, want memory/debug", cfg)
	}
	if cfg.DayPolicy != nav.DayPolicyReset {
		t.Fatalf("DayPolicy reverted to %v", cfg.DayPolicy)
	}
}

func TestApply_RejectsUnknownValues(t *testing.T) {
	cfg := Default()
	if err := cfg.Apply(Overrides{Storage: "s3"}); err == nil {
		t.Fatal("Apply returned nil error for unknown storage")
	}
	if err := cfg.Apply(Overrides{DayPolicy: "never"}); err == nil {
		t.Fatal("Apply returned nil error for unknown day policy")
	}
	if cfg != Default() {
		t.Fatalf("failed Apply changed cfg: %+v", cfg)
	}
}
