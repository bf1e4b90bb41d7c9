package eventqueue

import "errors"

var (
	// ErrInvalidCapacity is returned when a channel is created with a non-positive capacity.
	ErrInvalidCapacity = errors.New("eventqueue: capacity must be greater than zero")

	// ErrNilHandler is returned when a consumer is started with a nil handler.
	ErrNilHandler = errors.New("eventqueue: nil handler")

	// ErrOfferTimeout is returned when the buffer stayed full for the whole offer timeout.
	// The event is dropped.
	ErrOfferTimeout = errors.New("eventqueue: offer timed out waiting for buffer space")

	// ErrClosed is returned by Offer and consumer starts once Shutdown has begun.
	ErrClosed = errors.New("eventqueue: channel is shutting down")

	// ErrDrainTimeout is returned when Shutdown's context expires before the buffer drained.
	ErrDrainTimeout = errors.New("eventqueue: drain did not complete before deadline")

	// ErrUndelivered is returned when Shutdown finished with events left in the
	// buffer because no consumer loop was running to drain them.
	ErrUndelivered = errors.New("eventqueue: events left undelivered")

	// ErrBatchUnread is reported when a stream handler returned without ranging
	// over its batch. The batch's first event was already removed and is lost.
	ErrBatchUnread = errors.New("eventqueue: stream handler did not read its batch")

	// ErrHandlerPanic wraps a value recovered from a panicking handler.
	ErrHandlerPanic = errors.New("eventqueue: handler panicked")
)
