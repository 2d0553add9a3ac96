// Package app is the composition root for wayfarer.
//
// # Overview
//
// Open wires configuration, logging, the trip catalogue, durable storage,
// the checklist manager, the router and the session store into a Session.
// Both the TUI and the plain CLI commands run against a Session; neither
// builds collaborators itself.
//
// # Initialization Order
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/wayfarer/config.toml
//	       ├─────> cfg.Apply()          Command-line overrides
//	       ├─────> logging.Initialize() zap, silent unless a level is set
//	       ├─────> catalog.Default()    or catalog.Load(catalog_path)
//	       ├─────> storage.Open()       file | sqlite | memory
//	       ├─────> checklist.Load()     saved list reconciled with the template
//	       ├─────> nav.NewRouter()      day policy from config
//	       └─────> state.New()          the session store
//
// # Error Handling
//
// Fatal errors (returned from Open):
//   - Config file unreadable, unparsable, or with unknown values
//   - Invalid command-line override
//   - Catalogue override missing or invalid
//   - SQLite database that cannot be opened
//
// Recoverable errors (logged, the session continues):
//   - File storage directory that cannot be created (memory is used instead)
//   - Saved packing list unreadable or malformed (the template is used)
//   - Preferences unreadable (defaults are used)
//
// # Usage Example
//
//	sess, err := app.Open(app.Options{})
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//	return sess.RunTUI(ctx)
package app
