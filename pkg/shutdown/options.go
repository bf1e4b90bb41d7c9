package shutdown

import (
	"log/slog"
	"os"
	"time"
)

// DefaultTimeout bounds hook execution when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Option configures the Coordinator.
type Option func(*config)

type config struct {
	timeout time.Duration
	logger  *slog.Logger
	signals []os.Signal
}

// WithTimeout sets the deadline shared by all hooks.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithTimeout: duration must be > 0")
	}
	return func(c *config) { c.timeout = d }
}

// WithLogger sets the logger for hook progress and failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSignals replaces the signals Wait listens for.
func WithSignals(sig ...os.Signal) Option {
	if len(sig) == 0 {
		panic("WithSignals: at least one signal is required")
	}
	return func(c *config) { c.signals = sig }
}
