package cubezdd

import "github.com/rs/zerolog"

// Config holds Store configuration parameters. All fields are exported
// to allow inspection after construction.
type Config struct {
	// Logger receives structured diagnostic events (node-table growth
	// milestones, and the snapshot written by LogMetrics). Defaults to a no-op logger, so
	// a Store never emits output unless a caller opts in.
	Logger zerolog.Logger

	// OpCacheSize, when > 0, bounds each set-operation's memo cache to
	// an LRU of that many entries instead of the default unbounded map.
	// Purging a memo entry is always safe per spec: a cache miss simply
	// recomputes the (still canonical) result.
	OpCacheSize int

	// GrowthLogInterval controls how often (in newly created nodes) the
	// Store logs a node-table size milestone. 0 disables the milestone
	// log entirely.
	GrowthLogInterval int
}

// Option configures a Store using the functional-options pattern.
// Options are applied in the order they are provided to NewStore.
type Option func(*Config)

// WithLogger attaches a zerolog.Logger that the Store uses for
// structured diagnostics. The zero value (zerolog.Nop()) is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithOpCacheSize bounds the set-operation memo caches to an LRU of the
// given size. A value <= 0 restores the default unbounded cache.
func WithOpCacheSize(size int) Option {
	return func(c *Config) {
		c.OpCacheSize = size
	}
}

// WithGrowthLogInterval sets how many newly created nodes elapse between
// node-table size milestone logs. A value <= 0 disables the milestone log.
func WithGrowthLogInterval(n int) Option {
	return func(c *Config) {
		c.GrowthLogInterval = n
	}
}

// newConfig creates a new configuration with sensible defaults and
// applies the provided options in order.
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Logger:            zerolog.Nop(),
		OpCacheSize:       0,
		GrowthLogInterval: 0,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
