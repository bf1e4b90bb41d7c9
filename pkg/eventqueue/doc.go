// Package eventqueue provides a capacity-bounded event channel that decouples
// producers from background consumer loops.
//
// A Channel buffers up to a fixed number of events. Offer blocks while the
// buffer is full and gives up with ErrOfferTimeout once the offer timeout
// elapses, so a stalled consumer pushes back on producers instead of letting
// the buffer grow.
//
// # Consumers
//
// Consume starts a loop that hands buffered events to a handler one at a time,
// in FIFO order. ConsumeStream starts a loop that hands over batches as a lazy
// iter.Seq bounded by the buffer occupancy observed when the batch opened;
// retrievals that find the buffer already emptied by another loop are skipped.
// Handler errors and panics are reported and swallowed: one bad event never
// stops a loop. Several loops may share a channel; events are then balanced
// across them and ordering holds only for removal from the buffer.
//
// Each loop is bound to the context passed to Consume or ConsumeStream.
// Cancelling that context stops the loop immediately without draining.
//
// # Shutdown
//
// Shutdown stops accepting offers, waits for in-flight offers, and lets the
// running loops drain every buffered event before they exit. It returns when
// the buffer is empty and all loops have stopped, or when its context expires.
// A channel configured WithShutdownRegistrar registers Shutdown as a
// process-exit hook when its first consumer starts:
//
//	coord := shutdown.New()
//	ch, _ := eventqueue.New[OrderPlaced](256,
//	    eventqueue.WithOfferTimeout(time.Second),
//	    eventqueue.WithShutdownRegistrar(coord),
//	)
//	_ = ch.Consume(ctx, func(ctx context.Context, e OrderPlaced) error {
//	    return projector.Apply(ctx, e)
//	})
//	// blocks until SIGINT/SIGTERM, then drains ch
//	_ = coord.Wait(ctx)
//
// # States
//
// A channel moves from StateIdle to StateRunning when a consumer starts, to
// StateDraining when Shutdown begins, and to StateDrained once the buffer is
// empty and every loop has exited.
//
// # Diagnostics
//
// Channels log through the logger given WithLogger. Without one, nothing is
// logged unless debug tracing is on, either process-wide with SetDebug or per
// channel WithDebug; traces then go to stderr as text. Handler failures that
// wrap a domainerr.Error are rendered with their details.
package eventqueue
