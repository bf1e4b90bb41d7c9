package eventqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// Channel is a bounded FIFO buffer of events of type T shared between
// producers and consumer loops. All methods are safe for concurrent use.
type Channel[T any] struct {
	id     uuid.UUID
	buffer chan T
	opts   options

	// mu is held for reading by Offer and consumer starts, and for writing
	// once by Shutdown to wait for them before sealing the buffer.
	mu      sync.RWMutex
	closing chan struct{}
	sealed  chan struct{}
	drained chan struct{}

	shutdownOnce sync.Once
	registerOnce sync.Once
	consumers    sync.WaitGroup
	active       atomic.Int32
	state        atomic.Int32
}

// New creates a channel that buffers up to capacity events.
func New[T any](capacity int, opts ...Option) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	o := options{
		offerTimeout: DefaultOfferTimeout,
		drainTimeout: DefaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Channel[T]{
		id:      uuid.New(),
		buffer:  make(chan T, capacity),
		opts:    o,
		closing: make(chan struct{}),
		sealed:  make(chan struct{}),
		drained: make(chan struct{}),
	}, nil
}

// ID returns the channel identifier used in logs and hook names.
func (c *Channel[T]) ID() uuid.UUID { return c.id }

// Len returns the number of buffered events.
func (c *Channel[T]) Len() int { return len(c.buffer) }

// Cap returns the buffer capacity.
func (c *Channel[T]) Cap() int { return cap(c.buffer) }

// State returns the current lifecycle phase.
func (c *Channel[T]) State() State { return State(c.state.Load()) }

// Drained is closed once Shutdown has sealed the channel and every consumer
// loop has exited.
func (c *Channel[T]) Drained() <-chan struct{} { return c.drained }

// Offer adds event to the buffer, blocking while it is full.
// It returns ErrOfferTimeout if no space frees up within the offer timeout,
// ErrClosed once Shutdown has begun, or the context error if ctx ends first.
// A rejected event is dropped.
func (c *Channel[T]) Offer(ctx context.Context, event T) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	select {
	case <-c.closing:
		return ErrClosed
	default:
	}

	select {
	case c.buffer <- event:
		return nil
	default:
	}

	timer := time.NewTimer(c.opts.offerTimeout)
	defer timer.Stop()

	select {
	case c.buffer <- event:
		return nil
	case <-timer.C:
		c.log().WarnContext(ctx, "offer timed out, event dropped",
			logger.ChannelID(c.id),
			logger.Pending(len(c.buffer)),
			logger.Duration(c.opts.offerTimeout))
		return ErrOfferTimeout
	case <-c.closing:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting offers and waits until the consumer loops have
// drained the buffer and exited. It is safe to call more than once.
//
// It returns ErrDrainTimeout joined with the context error if ctx ends first,
// and ErrUndelivered if events remain because no loop was left to drain them.
func (c *Channel[T]) Shutdown(ctx context.Context) error {
	c.shutdownOnce.Do(c.seal)

	select {
	case <-c.drained:
	case <-ctx.Done():
		c.log().WarnContext(ctx, "drain interrupted",
			logger.ChannelID(c.id),
			logger.Pending(len(c.buffer)),
			logger.Error(ctx.Err()))
		return errors.Join(ErrDrainTimeout, ctx.Err())
	}

	if n := len(c.buffer); n > 0 {
		return fmt.Errorf("%w: %d events", ErrUndelivered, n)
	}
	return nil
}

// Run returns a function suitable for errgroup: it starts a consumer loop,
// waits for ctx to end, then drains the channel within the drain timeout.
func (c *Channel[T]) Run(ctx context.Context, handler HandlerFunc[T]) func() error {
	return func() error {
		// The loop must outlive ctx to drain after cancellation
		if err := c.Consume(context.WithoutCancel(ctx), handler); err != nil {
			return err
		}

		<-ctx.Done()

		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.drainTimeout)
		defer cancel()

		return c.Shutdown(drainCtx)
	}
}

func (c *Channel[T]) seal() {
	c.state.Store(int32(StateDraining))
	close(c.closing)

	// Wait for in-flight offers and consumer starts; after this no event can enter the buffer
	c.mu.Lock()
	close(c.sealed)
	c.mu.Unlock()

	c.log().Debug("waiting for queued events",
		logger.ChannelID(c.id),
		logger.Pending(len(c.buffer)),
		slog.Int("consumers", int(c.active.Load())))

	go func() {
		c.consumers.Wait()

		pending := len(c.buffer)
		if pending == 0 {
			c.state.Store(int32(StateDrained))
			c.log().Debug("all queued events resolved", logger.ChannelID(c.id))
		} else {
			c.log().Warn("consumers stopped with queued events left",
				logger.ChannelID(c.id),
				logger.Pending(pending))
		}
		close(c.drained)
	}()
}

func (c *Channel[T]) log() *slog.Logger {
	switch {
	case c.opts.logger != nil:
		return c.opts.logger
	case c.opts.debug || debugEnabled.Load():
		return diagnosticLogger()
	default:
		return noopLogger
	}
}
