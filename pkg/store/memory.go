package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownStyle indicates UseStyle was asked for an unregistered style.
var ErrUnknownStyle = errors.New("store: unknown style")

// MemoryStore is an in-memory Store keyed by dotted parameter names. The
// baseline map given at construction defines the native key space; Reset
// returns the live table to it. The registry is single-writer, but the store
// guards itself since collaborators may outlive the registry that seeded it.
type MemoryStore struct {
	mu       sync.RWMutex
	baseline map[string]any
	live     map[string]any
	styles   map[string]map[string]any
}

// NewMemoryStore builds a store over baseline with an empty default style.
func NewMemoryStore(baseline map[string]any) *MemoryStore {
	return &MemoryStore{
		baseline: cloneTable(baseline),
		live:     cloneTable(baseline),
		styles: map[string]map[string]any{
			StyleDefault: {},
		},
	}
}

// RegisterStyle stores a named overlay that UseStyle applies on top of the
// current table. Registering StyleDefault replaces the builtin empty overlay.
func (s *MemoryStore) RegisterStyle(name string, params map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles[name] = cloneTable(params)
}

// UseStyle applies the named overlay. Unknown names fail with ErrUnknownStyle.
func (s *MemoryStore) UseStyle(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	style, ok := s.styles[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	for key, value := range style {
		s.live[key] = value
	}
	return nil
}

func (s *MemoryStore) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.live[key]
	return ok
}

func (s *MemoryStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.live[key]
	return value, ok
}

func (s *MemoryStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[key] = value
}

func (s *MemoryStore) Copy() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTable(s.live)
}

func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.live))
	for key := range s.live {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Reset discards every mutation and style overlay, returning the live table
// to the construction baseline.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = cloneTable(s.baseline)
}

func cloneTable(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
