package eventqueue

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultOfferTimeout is how long Offer waits for buffer space by default.
	DefaultOfferTimeout = 2 * time.Minute

	// DefaultDrainTimeout bounds the drain performed by Run.
	DefaultDrainTimeout = 30 * time.Second
)

// ShutdownRegistrar accepts process-exit hooks. shutdown.Coordinator implements it.
type ShutdownRegistrar interface {
	Register(name string, hook func(ctx context.Context) error)
}

// Option configures a Channel.
type Option func(*options)

type options struct {
	offerTimeout time.Duration
	drainTimeout time.Duration
	logger       *slog.Logger
	debug        bool
	onError      func(error)
	registrar    ShutdownRegistrar
}

// WithOfferTimeout sets how long Offer blocks on a full buffer.
func WithOfferTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.offerTimeout = d
		}
	}
}

// WithDrainTimeout sets how long Run waits for the drain after its context is done.
func WithDrainTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.drainTimeout = d
		}
	}
}

// WithLogger sets the logger for traces and handler failures.
// It takes precedence over debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDebug enables stderr tracing for this channel regardless of SetDebug.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithErrorHandler registers a callback invoked with every handler failure
// caught by a consumer loop. It runs on the consumer goroutine.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithShutdownRegistrar registers the channel's Shutdown with r when the first
// consumer loop starts.
func WithShutdownRegistrar(r ShutdownRegistrar) Option {
	return func(o *options) {
		o.registrar = r
	}
}
