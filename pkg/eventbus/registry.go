package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

type (
	// Handler receives an event whose dynamic type matched the subscription.
	Handler func(ctx context.Context, event any) error

	// HandlerFunc is the typed handler accepted by Subscribe.
	HandlerFunc[T any] func(ctx context.Context, event T) error
)

// Registry dispatches published events to handlers keyed by exact type.
// All methods are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	subs   map[reflect.Type][]Handler
	names  map[string]reflect.Type
	logger *slog.Logger
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		subs:   make(map[reflect.Type][]Handler),
		names:  make(map[string]reflect.Type),
		logger: logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TypeOf returns the dispatch key for events of type T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Subscribe registers a typed handler for events of exactly type T.
func Subscribe[T any](r *Registry, h HandlerFunc[T]) error {
	if h == nil {
		return ErrNilHandler
	}
	return r.SubscribeType(TypeOf[T](), func(ctx context.Context, event any) error {
		return h(ctx, event.(T))
	})
}

// SubscribeType appends h to the handler list for t.
// Duplicate handlers are allowed and each is invoked.
func (r *Registry) SubscribeType(t reflect.Type, h Handler) error {
	switch {
	case t == nil:
		return ErrNilType
	case t.Kind() == reflect.Interface:
		return fmt.Errorf("%w: %s", ErrInterfaceType, t)
	case h == nil:
		return ErrNilHandler
	}

	r.mu.Lock()
	// Clip forces append to allocate, so snapshots held by Publish are never written to
	r.subs[t] = append(slices.Clip(r.subs[t]), h)
	n := len(r.subs[t])
	r.mu.Unlock()

	r.logger.Debug("handler subscribed",
		logger.Component("eventbus"),
		logger.EventType(t),
		slog.Int("handlers", n))

	return nil
}

// Publish invokes every handler subscribed to the exact dynamic type of event,
// in subscription order, on the calling goroutine.
// Publishing a nil event or an event without subscribers is a no-op.
func (r *Registry) Publish(ctx context.Context, event any) error {
	t := reflect.TypeOf(event)
	if t == nil {
		return nil
	}

	r.mu.RLock()
	handlers := r.subs[t]
	r.mu.RUnlock()

	for i, h := range handlers {
		if err := h(ctx, event); err != nil {
			return fmt.Errorf("%w: %s handler #%d: %w", ErrHandlerFailed, t, i, err)
		}
	}
	return nil
}

// Subscribers returns the number of handlers registered for t.
func (r *Registry) Subscribers(t reflect.Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[t])
}
