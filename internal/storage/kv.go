package storage

import "sync"

// KV is a string-keyed store of JSON-encoded values.
// Get reports ok=false for absent keys; errors are reserved for I/O failures.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Keys used by the learning and settings stores.
const (
	KeyMastery  = "learningProgress"
	KeyWrong    = "wrongWords"
	KeySettings = "gameSettings"
)

// MemoryKV is an in-memory KV. State is lost when the process exits;
// it backs tests and runs without a database.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get looks up a key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores a value, replacing any previous one.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove deletes a key. Removing an absent key is a no-op.
func (m *MemoryKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

var (
	_ KV = (*MemoryKV)(nil)
	_ KV = (*Store)(nil)
)
