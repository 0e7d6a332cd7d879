package memory

import (
	"sync"

	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory driven.ConfigStore used by tests and by the
// CLI when no config file can be opened.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns "" for missing or non-string values.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt truncates floats.
func (s *ConfigStore) GetInt(key string) int {
	f, _ := s.number(key)
	return int(f)
}

// GetFloat converts integers.
func (s *ConfigStore) GetFloat(key string) float64 {
	f, _ := s.number(key)
	return f
}

func (s *ConfigStore) number(key string) (float64, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// GetBool returns false for missing or non-bool values.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice accepts []string or []any of strings.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

// Path returns ":memory:".
func (s *ConfigStore) Path() string { return ":memory:" }
