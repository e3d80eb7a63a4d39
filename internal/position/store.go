package position

import (
	"fmt"
	"sync"
)

// Backend names accepted by Open
const (
	BackendMemory      = "memory"
	BackendPreferences = "preferences"
	BackendSQLite      = "sqlite"
)

// Store is a persisted integer key/value capability
type Store interface {
	// Get returns the stored value and whether one exists
	Get(key string) (int, bool)
	// Set stores value under key
	Set(key string, value int) error
	Close() error
}

// ValidBackend reports whether name is a known backend
func ValidBackend(name string) bool {
	switch name {
	case BackendMemory, BackendPreferences, BackendSQLite:
		return true
	}
	return false
}

// CheckBackend returns an error naming the accepted backends
func CheckBackend(name string) error {
	if !ValidBackend(name) {
		return fmt.Errorf("unknown state backend %q (use %s, %s or %s)",
			name, BackendPreferences, BackendSQLite, BackendMemory)
	}
	return nil
}

// Memory is a process-local Store, used in tests and with the memory backend
type Memory struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// Get returns the value for key and whether it was set
func (m *Memory) Get(key string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
