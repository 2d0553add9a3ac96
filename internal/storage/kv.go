package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// KV is a small synchronous key-value store. Callers treat both methods as
// best effort: a failed Get behaves like an absent key and a failed Set
// leaves the caller's in-memory state authoritative.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrEmptyKey is returned when a key is blank.
var ErrEmptyKey = errors.New("storage: empty key")

// Options select and configure a backend.
type Options struct {
	Backend string
	Dir     string // data directory for file and sqlite backends
}

// Store is a KV that may hold resources.
type Store interface {
	KV
	Close() error
}

// Open returns the backend named in opts. An empty backend means file.
func Open(opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendFile:
		return NewFileKV(opts.Dir)
	case BackendSQLite:
		return OpenSQLite(sqlitePath(opts.Dir))
	case BackendMemory:
		return NewMemKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// MemKV is an in-process KV. It does not survive the process.
type MemKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemKV) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemKV) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Close implements Store.
func (m *MemKV) Close() error { return nil }
