package cart_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should create an empty cart", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		c, err := cart.NewCart(id, userID)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.True(t, c.UserID().IsEqual(userID))
		assert.True(t, c.IsEmpty())
		assert.True(t, c.Total().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)

		_, err = cart.NewCart(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestCart_Put(t *testing.T) {
	t.Run("should add a new line with derived total", func(t *testing.T) {
		c := newCart(t)
		menuItemID := kernel.NewUUID()

		require.NoError(t, c.Put(menuItemID, kernel.MustMoney("10.00"), 2))

		require.Len(t, c.Lines(), 1)
		line := c.Lines()[0]
		assert.True(t, line.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, "10.00", line.UnitPrice().String())
		assert.Equal(t, "20.00", line.LineTotal().String())
	})

	t.Run("re-adding the same item replaces quantity and total", func(t *testing.T) {
		c := newCart(t)
		menuItemID := kernel.NewUUID()
		require.NoError(t, c.Put(menuItemID, kernel.MustMoney("10.00"), 2))

		require.NoError(t, c.Put(menuItemID, kernel.MustMoney("10.00"), 5))

		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 5, c.Lines()[0].Quantity())
		assert.Equal(t, "50.00", c.Lines()[0].LineTotal().String())
	})

	t.Run("distinct items occupy distinct lines", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Put(kernel.NewUUID(), kernel.MustMoney("10.00"), 2))
		require.NoError(t, c.Put(kernel.NewUUID(), kernel.MustMoney("5.00"), 1))

		assert.Len(t, c.Lines(), 2)
		assert.True(t, c.Total().IsEqual(kernel.MustMoney("25.00")))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		c := newCart(t)

		for _, qty := range []int{0, -3} {
			err := c.Put(kernel.NewUUID(), kernel.MustMoney("10.00"), qty)
			require.Error(t, err, "quantity %d", qty)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject non-positive unit price", func(t *testing.T) {
		c := newCart(t)

		require.Error(t, c.Put(kernel.NewUUID(), kernel.MustMoney("0"), 1))
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should remove all lines", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.Put(kernel.NewUUID(), kernel.MustMoney("10.00"), 1))

		c.Clear()

		assert.True(t, c.IsEmpty())
	})

	t.Run("clearing an empty cart succeeds", func(t *testing.T) {
		c := newCart(t)

		c.Clear()
		c.Clear()

		assert.True(t, c.IsEmpty())
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should restore persisted lines", func(t *testing.T) {
		line, err := cart.NewLine(kernel.NewUUID(), 2, kernel.MustMoney("10.00"))
		require.NoError(t, err)

		c, err := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), []cart.Line{line})

		require.NoError(t, err)
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("should reject duplicate menu item lines", func(t *testing.T) {
		menuItemID := kernel.NewUUID()
		line1, err := cart.NewLine(menuItemID, 2, kernel.MustMoney("10.00"))
		require.NoError(t, err)
		line2, err := cart.NewLine(menuItemID, 1, kernel.MustMoney("10.00"))
		require.NoError(t, err)

		_, err = cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), []cart.Line{line1, line2})

		require.Error(t, err)
	})
}

func TestCart_Validate(t *testing.T) {
	t.Run("should reject a zero-value cart", func(t *testing.T) {
		var c cart.Cart

		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}
