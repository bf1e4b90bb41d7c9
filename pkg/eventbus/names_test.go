package eventbus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/eventbus"
)

func TestQualifiedName(t *testing.T) {
	t.Parallel()

	const want = "github.com/dmitrymomot/eventkit/pkg/eventbus_test.orderPlaced"
	assert.Equal(t, want, eventbus.QualifiedName(eventbus.TypeOf[orderPlaced]()))
	assert.Equal(t, "*"+want, eventbus.QualifiedName(eventbus.TypeOf[*orderPlaced]()))
	assert.Equal(t, "**"+want, eventbus.QualifiedName(eventbus.TypeOf[**orderPlaced]()))
	assert.Equal(t, "string", eventbus.QualifiedName(eventbus.TypeOf[string]()))
	assert.Equal(t, "*string", eventbus.QualifiedName(eventbus.TypeOf[*string]()))
	assert.Equal(t, "[]int", eventbus.QualifiedName(eventbus.TypeOf[[]int]()))
}

func TestRegisterType_PointerAndValueDefaultNames(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	require.NoError(t, eventbus.RegisterType[*orderPlaced](bus))
	require.NoError(t, eventbus.RegisterType[orderPlaced](bus))

	ptr, err := bus.Resolve(eventbus.QualifiedName(eventbus.TypeOf[*orderPlaced]()))
	require.NoError(t, err)
	assert.Equal(t, eventbus.TypeOf[*orderPlaced](), ptr)

	val, err := bus.Resolve(eventbus.QualifiedName(eventbus.TypeOf[orderPlaced]()))
	require.NoError(t, err)
	assert.Equal(t, eventbus.TypeOf[orderPlaced](), val)
}

func TestRegistry_SubscribeName(t *testing.T) {
	t.Parallel()

	t.Run("resolves registered name", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		require.NoError(t, eventbus.RegisterType[orderPlaced](bus, "orders.placed"))

		var got orderPlaced
		require.NoError(t, bus.SubscribeName("orders.placed", func(ctx context.Context, event any) error {
			got = event.(orderPlaced)
			return nil
		}))

		require.NoError(t, bus.Publish(context.Background(), orderPlaced{ID: 9}))
		assert.Equal(t, 9, got.ID)
	})

	t.Run("default qualified name", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		require.NoError(t, eventbus.RegisterType[userSignedUp](bus))

		name := eventbus.QualifiedName(eventbus.TypeOf[userSignedUp]())
		typ, err := bus.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, eventbus.TypeOf[userSignedUp](), typ)
	})

	t.Run("unknown name creates no subscription", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		err := bus.SubscribeName("orders.unknown", func(ctx context.Context, event any) error { return nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, eventbus.ErrTypeNotFound)

		var resErr *eventbus.TypeResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "orders.unknown", resErr.Name)
		assert.Contains(t, err.Error(), "orders.unknown")
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		assert.ErrorIs(t, bus.RegisterName("", eventbus.TypeOf[orderPlaced]()), eventbus.ErrEmptyName)
		_, err := bus.Resolve("")
		assert.ErrorIs(t, err, eventbus.ErrEmptyName)
	})

	t.Run("duplicate name for different type", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		require.NoError(t, eventbus.RegisterType[orderPlaced](bus, "evt"))
		require.NoError(t, eventbus.RegisterType[orderPlaced](bus, "evt"))
		assert.ErrorIs(t, eventbus.RegisterType[userSignedUp](bus, "evt"), eventbus.ErrDuplicateName)
	})

	t.Run("nil type", func(t *testing.T) {
		t.Parallel()

		bus := eventbus.New()
		assert.ErrorIs(t, bus.RegisterName("evt", nil), eventbus.ErrNilType)
	})
}
