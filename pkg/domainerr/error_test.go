package domainerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/domainerr"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()

		err := domainerr.New("order rejected")
		assert.Equal(t, "order rejected", err.Error())
		assert.Equal(t, "order rejected", err.Message())
		assert.Empty(t, err.Details())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with details keeps insertion order", func(t *testing.T) {
		t.Parallel()

		err := domainerr.New("order rejected").
			With("order_id", 42).
			With("reason", "stock")

		require.Len(t, err.Details(), 2)
		assert.Equal(t, domainerr.Detail{Key: "order_id", Value: 42}, err.Details()[0])
		assert.Equal(t, domainerr.Detail{Key: "reason", Value: "stock"}, err.Details()[1])
	})

	t.Run("with does not mutate receiver", func(t *testing.T) {
		t.Parallel()

		base := domainerr.New("base").With("a", 1)
		_ = base.With("b", 2)
		assert.Len(t, base.Details(), 1)
	})

	t.Run("with replaces existing key", func(t *testing.T) {
		t.Parallel()

		err := domainerr.New("x").With("a", 1).With("b", 2).With("a", 3)
		require.Len(t, err.Details(), 2)
		assert.Equal(t, 3, err.Details()[0].Value)
	})

	t.Run("wrap", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("db down")
		err := domainerr.Wrap(cause, "save failed")
		assert.Equal(t, "save failed: db down", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Nil(t, domainerr.Wrap(nil, "noop"))
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("domain error with details", func(t *testing.T) {
		t.Parallel()

		err := domainerr.New("order rejected").With("order_id", 42).With("reason", "stock")
		assert.Equal(t, "order rejected [order_id:42,reason:stock]", domainerr.Format("handle failed", err))
	})

	t.Run("wrapped domain error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("consumer: %w", domainerr.New("invalid").With("field", "email"))
		assert.Equal(t, "invalid [field:email]", domainerr.Format("handle failed", err))
	})

	t.Run("domain error without details", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "invalid", domainerr.Format("handle failed", domainerr.New("invalid")))
	})

	t.Run("generic error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "handle failed", domainerr.Format("handle failed", errors.New("boom")))
		assert.Equal(t, "handle failed", domainerr.Format("handle failed", nil))
	})
}
