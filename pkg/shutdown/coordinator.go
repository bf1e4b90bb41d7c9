package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// Hook releases a component's resources. It must return once ctx is done.
type Hook = func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

// Coordinator collects shutdown hooks and runs them once.
type Coordinator struct {
	cfg config

	mu      sync.Mutex
	hooks   []namedHook
	started bool

	trigger     chan struct{}
	triggerOnce sync.Once

	once sync.Once
	done chan struct{}
	err  error
}

// New creates a Coordinator listening for os.Interrupt and SIGTERM.
func New(opts ...Option) *Coordinator {
	cfg := config{
		timeout: DefaultTimeout,
		logger:  logger.NewNoop(),
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Coordinator{
		cfg:     cfg,
		trigger: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Register adds a named hook. Nil hooks and hooks registered after shutdown
// started are ignored.
func (c *Coordinator) Register(name string, hook func(ctx context.Context) error) {
	if hook == nil {
		return
	}

	c.mu.Lock()
	started := c.started
	if !started {
		c.hooks = append(c.hooks, namedHook{name: name, fn: hook})
	}
	c.mu.Unlock()

	if started {
		c.cfg.logger.Warn("hook registered after shutdown, ignored", logger.Hook(name))
	}
}

// Trigger requests shutdown as if a signal had been received.
func (c *Coordinator) Trigger() {
	c.triggerOnce.Do(func() { close(c.trigger) })
}

// Done is closed once every hook has returned or the deadline passed.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until a signal arrives, Trigger is called, or ctx ends,
// then runs the hooks and returns the Shutdown result.
func (c *Coordinator) Wait(ctx context.Context) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, c.cfg.signals...)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		c.cfg.logger.Info("shutdown signal received", "signal", sig.String())
	case <-c.trigger:
		c.cfg.logger.Info("shutdown triggered")
	case <-ctx.Done():
		c.cfg.logger.Info("shutdown on context done", logger.Error(ctx.Err()))
	}

	return c.Shutdown(context.WithoutCancel(ctx))
}

// Shutdown runs all registered hooks concurrently within the configured
// timeout. It is safe for repeated calls; later calls return the first result.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.once.Do(func() {
		defer close(c.done)
		c.err = c.run(ctx)
	})
	<-c.done
	return c.err
}

func (c *Coordinator) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	c.mu.Lock()
	c.started = true
	hooks := c.hooks
	c.mu.Unlock()

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	for _, h := range hooks {
		g.Go(func() error {
			start := time.Now()
			err := h.fn(ctx)
			if err != nil {
				c.cfg.logger.ErrorContext(ctx, "shutdown hook failed",
					logger.Hook(h.name),
					logger.Duration(time.Since(start)),
					logger.Error(err))

				mu.Lock()
				errs = append(errs, fmt.Errorf("%w: %s: %w", ErrHookFailed, h.name, err))
				mu.Unlock()
				return nil
			}
			c.cfg.logger.DebugContext(ctx, "shutdown hook completed",
				logger.Hook(h.name),
				logger.Duration(time.Since(start)))
			return nil
		})
	}

	finished := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		c.cfg.logger.Warn("shutdown deadline exceeded", logger.Duration(c.cfg.timeout))
		return errors.Join(append([]error{ErrTimeout, err}, errs...)...)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	c.cfg.logger.InfoContext(ctx, "shutdown completed", slog.Int("hooks", len(hooks)))
	return nil
}
