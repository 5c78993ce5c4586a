package flextable

import "sync"

// PreferenceStore persists small string values under string keys. The table
// model uses it to remember user column widths between sessions.
//
// Get returns ErrNoStoredValue when no value has been stored under key.
// Implementations must be safe for concurrent use.
type PreferenceStore interface {
	Get(key string) (string, error)
	Set(key string, value string) error
}

// MapStore is an in-memory PreferenceStore. It is primarily useful in tests
// and in applications that do not want persistence across runs.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

// Get implements PreferenceStore.
func (s *MapStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNoStoredValue
	}
	return v, nil
}

// Set implements PreferenceStore.
func (s *MapStore) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
