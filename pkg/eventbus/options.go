package eventbus

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for subscription diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
