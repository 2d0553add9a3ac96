// Package config loads wayfarer's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wayfarer/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/wayfarer/config.toml
//   - Storage backend: file
//   - Data directory: ~/.local/share/wayfarer
//   - Catalogue: the trip embedded in the binary
//   - Day policy: persistent
//   - Reconcile: merge
//   - Logging: silent unless log_level or WAYFARER_LOG_LEVEL is set
//
// # TOML Format
//
//	storage = "sqlite"          # file | sqlite | memory
//	data_dir = "~/.local/share/wayfarer"
//	catalog_path = "~/trips/shikoku.yaml"
//	day_policy = "persistent"   # persistent | reset
//	reconcile = "merge"         # merge | verbatim
//	log_level = "info"
//	log_file = "~/.local/share/wayfarer/wayfarer.log"
//
// Every field is optional. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown storage, day_policy or reconcile values
//
// Missing config files are NOT an error. wayfarer works out of the box.
//
// Command-line flags override individual fields after Load; see package cli.
package config
