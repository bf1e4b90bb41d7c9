// Package eventkit is an in-process event core for Go services.
//
// It is split into small packages that compose:
//
//   - pkg/eventbus: synchronous publish/subscribe keyed by the exact event type,
//     with name-based subscription for types registered under a string name.
//   - pkg/eventqueue: a bounded FIFO channel with offer timeouts, single-event
//     and batch consumer loops, and drain-before-exit shutdown.
//   - pkg/shutdown: a coordinator that runs registered hooks on SIGINT/SIGTERM.
//   - pkg/domainerr: errors carrying ordered key/value details for diagnostics.
//   - pkg/config and pkg/logger: environment configuration and slog setup.
//
// A typical wiring publishes through the registry, offers into a channel
// from a subscriber, and lets the coordinator drain the channel on exit:
//
//	bus := eventbus.New()
//	coord := shutdown.New()
//	orders, _ := eventqueue.New[OrderPlaced](256, eventqueue.WithShutdownRegistrar(coord))
//
//	_ = eventbus.Subscribe(bus, func(ctx context.Context, e OrderPlaced) error {
//		return orders.Offer(ctx, e)
//	})
//	_ = orders.Consume(ctx, projectOrder)
//
//	_ = bus.Publish(ctx, OrderPlaced{ID: "ord_1"})
//	_ = coord.Wait(ctx)
//
// See cmd/eventpipe for a runnable example.
package eventkit
