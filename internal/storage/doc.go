// Package storage provides the durable key-value store the checklist is
// persisted to.
//
// # Backends
//
//   - file: one JSON file per key under the data directory
//     (default ~/.local/share/wayfarer), replaced atomically on every write.
//   - sqlite: a single `kv` table in wayfarer.db (modernc.org/sqlite, no cgo).
//   - memory: process-local map, used by tests and --storage=memory runs.
//
// # Failure Semantics
//
// The store makes no quota or durability promises. Callers decide what a
// failure means; the checklist treats read errors as "absent" and logs and
// drops write errors.
package storage
