package eventqueue

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit/pkg/domainerr"
	"github.com/dmitrymomot/eventkit/pkg/logger"
)

type (
	// HandlerFunc handles a single dequeued event.
	HandlerFunc[T any] func(ctx context.Context, event T) error

	// StreamHandlerFunc handles a batch of dequeued events.
	// The sequence is lazy and can be ranged over once.
	StreamHandlerFunc[T any] func(ctx context.Context, events iter.Seq[T]) error
)

const failureMessage = "handle queued event failed"

// Consume starts a background loop that removes the oldest buffered event,
// blocking while the buffer is empty, and passes it to handler.
// The loop runs until ctx is cancelled or Shutdown has drained the buffer.
func (c *Channel[T]) Consume(ctx context.Context, handler HandlerFunc[T]) error {
	if handler == nil {
		return ErrNilHandler
	}
	return c.start(ctx, "single", func(ctx context.Context, id uuid.UUID) {
		c.loop(ctx, func(event T) {
			c.trace(ctx, id, event)
			c.invoke(ctx, id, func(ctx context.Context) error {
				return handler(ctx, event)
			})
		})
	})
}

// ConsumeStream starts a background loop that waits for at least one event,
// then passes handler a batch bounded by the number of events buffered at
// that moment. Events another loop removed first are skipped.
// The first event of each batch is removed before handler runs; events the
// handler does not iterate stay buffered for the next batch. A handler that
// never ranges over its batch loses that first event, which is reported to the
// error handler as ErrBatchUnread.
func (c *Channel[T]) ConsumeStream(ctx context.Context, handler StreamHandlerFunc[T]) error {
	if handler == nil {
		return ErrNilHandler
	}
	return c.start(ctx, "stream", func(ctx context.Context, id uuid.UUID) {
		c.loop(ctx, func(first T) {
			var started atomic.Bool
			batch := c.batch(ctx, id, first, &started)
			c.invoke(ctx, id, func(ctx context.Context) error {
				return handler(ctx, batch)
			})
			if !started.Load() {
				c.log().WarnContext(ctx, "stream handler returned without reading its batch",
					logger.ChannelID(c.id),
					logger.ConsumerID(id),
					logger.Event(first))
				if c.opts.onError != nil {
					c.opts.onError(fmt.Errorf("%w: dropped %v", ErrBatchUnread, first))
				}
			}
		})
	})
}

func (c *Channel[T]) start(ctx context.Context, mode string, run func(context.Context, uuid.UUID)) error {
	c.mu.RLock()
	select {
	case <-c.closing:
		c.mu.RUnlock()
		return ErrClosed
	default:
	}
	c.consumers.Add(1)
	c.active.Add(1)
	c.state.CompareAndSwap(int32(StateIdle), int32(StateRunning))
	c.mu.RUnlock()

	c.registerOnce.Do(func() {
		if c.opts.registrar != nil {
			c.opts.registrar.Register("eventqueue:"+c.id.String(), c.Shutdown)
		}
	})

	id := uuid.New()
	go func() {
		defer c.consumers.Done()
		defer c.active.Add(-1)

		c.log().Debug("consumer started",
			logger.ChannelID(c.id),
			logger.ConsumerID(id),
			slog.String("mode", mode))

		run(ctx, id)

		c.log().Debug("consumer stopped",
			logger.ChannelID(c.id),
			logger.ConsumerID(id),
			logger.Error(ctx.Err()))
	}()

	return nil
}

// loop receives events until ctx ends, or until the channel is sealed and the buffer is empty.
func (c *Channel[T]) loop(ctx context.Context, handle func(T)) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-c.buffer:
			handle(event)
		case <-c.sealed:
			for {
				if ctx.Err() != nil {
					return
				}
				select {
				case event := <-c.buffer:
					handle(event)
				default:
					return
				}
			}
		}
	}
}

// batch returns a single-use sequence starting with first and bounded by the
// current buffer occupancy.
func (c *Channel[T]) batch(ctx context.Context, id uuid.UUID, first T, started *atomic.Bool) iter.Seq[T] {
	remaining := len(c.buffer)
	return func(yield func(T) bool) {
		if !started.CompareAndSwap(false, true) {
			return
		}
		c.trace(ctx, id, first)
		if !yield(first) {
			return
		}
		for range remaining {
			select {
			case event := <-c.buffer:
				c.trace(ctx, id, event)
				if !yield(event) {
					return
				}
			default:
				// Taken by another loop; filtered out of the batch
			}
		}
	}
}

// invoke runs fn, reporting and swallowing its error or panic.
func (c *Channel[T]) invoke(ctx context.Context, id uuid.UUID, fn func(context.Context) error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.reportFailure(ctx, id, fmt.Errorf("%w: %v", ErrHandlerPanic, r), time.Since(start))
		}
	}()

	if err := fn(ctx); err != nil {
		c.reportFailure(ctx, id, err, time.Since(start))
	}
}

func (c *Channel[T]) reportFailure(ctx context.Context, id uuid.UUID, err error, d time.Duration) {
	c.log().ErrorContext(ctx, domainerr.Format(failureMessage, err),
		logger.ChannelID(c.id),
		logger.ConsumerID(id),
		logger.Duration(d),
		logger.Error(err))

	if c.opts.onError != nil {
		c.opts.onError(err)
	}
}

func (c *Channel[T]) trace(ctx context.Context, id uuid.UUID, event T) {
	c.log().DebugContext(ctx, "event dequeued",
		logger.ChannelID(c.id),
		logger.ConsumerID(id),
		logger.Event(event))
}
