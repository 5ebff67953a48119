package driven

// ConfigStore provides read access to flattened configuration keys such as
// "data.dir" or "datasets.chicago". Stores never write configuration.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value for key, or "" when absent or not a string.
	GetString(key string) string

	// GetInt returns the value for key, or 0 when absent or not a whole number.
	GetInt(key string) int

	// Keys lists every key that is set, sorted.
	Keys() []string

	// Load re-reads configuration from its source.
	Load() error

	// Path describes where configuration is read from.
	Path() string
}
