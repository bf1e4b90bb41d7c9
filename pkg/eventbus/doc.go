// Package eventbus implements a synchronous, type-keyed publish/subscribe registry.
//
// A Registry maps the exact dynamic type of an event to an ordered list of
// handlers. Publish looks up the event's type and invokes every handler
// registered for it, in subscription order, on the caller's goroutine.
//
// # Type matching
//
// Dispatch keys are reflect.Type values compared by identity. There is no
// polymorphic matching: a struct that embeds another struct is a different
// type, and T and *T are different types. Subscribing to an interface type is
// rejected with ErrInterfaceType because no dynamic value ever has an
// interface type.
//
// # Usage
//
//	bus := eventbus.New()
//
//	err := eventbus.Subscribe(bus, func(ctx context.Context, e OrderPlaced) error {
//	    return mailer.SendReceipt(ctx, e.OrderID)
//	})
//
//	if err := bus.Publish(ctx, OrderPlaced{OrderID: id}); err != nil {
//	    // a handler failed; remaining handlers were not invoked
//	}
//
// # Subscribing by name
//
// Types can be registered under textual names at startup and subscribed by
// name later, which is useful when subscriptions come from configuration:
//
//	_ = eventbus.RegisterType[OrderPlaced](bus, "orders.placed")
//	err := bus.SubscribeName("orders.placed", handler)
//
// An unknown name yields a *TypeResolutionError and creates no subscription.
//
// # Concurrency
//
// Subscribe and Publish are safe for concurrent use. Publish works on a
// snapshot of the handler list taken when it starts; a subscription racing a
// publish may or may not be included but never corrupts the list.
//
// # Error Handling
//
// Handler errors are not swallowed. The first failing handler stops the fan-out
// and its error is returned to the publisher wrapped with ErrHandlerFailed.
// Panics are not recovered.
package eventbus
