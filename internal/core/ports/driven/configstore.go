package driven

// ConfigStore holds the flat, dot-keyed configuration ("mcp.port",
// "scheduler.interval"). Typed getters return the zero value when the key is
// missing or holds another type. Values read from the environment take
// precedence over stored ones but are never written back.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int

	// GetFloat also accepts integer values.
	GetFloat(key string) float64

	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set stores value and persists it immediately.
	Set(key string, value any) error

	Save() error
	Load() error

	// Path is the backing file, ":memory:" for the in-memory store.
	Path() string
}
