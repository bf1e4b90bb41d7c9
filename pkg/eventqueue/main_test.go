package eventqueue_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/eventkit/pkg/eventqueue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestChannel creates a channel that is shut down when the test ends.
func newTestChannel[T any](t *testing.T, capacity int, opts ...eventqueue.Option) *eventqueue.Channel[T] {
	t.Helper()

	ch, err := eventqueue.New[T](capacity, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = ch.Shutdown(ctx)
	})

	return ch
}

// newGate returns a channel handlers can block on and a release func that is
// also run on cleanup, before the channel is shut down.
func newGate(t *testing.T) (<-chan struct{}, func()) {
	t.Helper()

	gate := make(chan struct{})
	release := sync.OnceFunc(func() { close(gate) })
	t.Cleanup(release)
	return gate, release
}

type recorder[T any] struct {
	mu    sync.Mutex
	items []T
}

func (r *recorder[T]) add(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, v)
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *recorder[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
