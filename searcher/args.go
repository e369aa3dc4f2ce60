package searcher

import (
	"time"

	"baz/experiments/metrics"
)

// Option configures a MinMax. Out-of-range values are ignored and leave the default in place.
type Option func(c *config)

type config struct {
	duration   time.Duration
	startDepth int
	maxDepth   int
	maxWidth   int
	goroutines int
	seed       uint64
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

func WithStartDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.startDepth = depth
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithMaxWidth limits how many replies are searched at every ply below the root. Zero searches
// all of them.
func WithMaxWidth(width int) Option {
	return func(c *config) {
		if width >= 0 {
			c.maxWidth = width
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithSeed fixes the move-order shuffling.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}
