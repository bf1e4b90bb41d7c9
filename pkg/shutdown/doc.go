// Package shutdown coordinates process exit for components that must finish
// their work before the program stops.
//
// Components register named hooks with a Coordinator. Wait blocks until an
// interrupt or TERM signal arrives, Trigger is called, or the context ends,
// then runs every hook concurrently under a shared deadline.
//
// Usage:
//
//	coord := shutdown.New(shutdown.WithTimeout(10 * time.Second))
//
//	ch, _ := eventqueue.New[OrderPlaced](256, eventqueue.WithShutdownRegistrar(coord))
//	_ = ch.Consume(ctx, handleOrder)
//
//	if err := coord.Wait(ctx); err != nil {
//		slog.Error("shutdown incomplete", logger.Error(err))
//	}
//
// Hook failures are wrapped with ErrHookFailed and joined, so each one can be
// inspected with errors.Is. Exceeding the deadline yields ErrTimeout.
package shutdown
