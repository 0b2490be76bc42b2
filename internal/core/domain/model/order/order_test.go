package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, qty int, unitPrice string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), qty, kernel.MustMoney(unitPrice))
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with total as sum of line prices", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 2, "10.00"),
			mustLine(t, 1, "5.00"),
		}
		createdAt := time.Now()

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), createdAt, lines)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.DeliveryCrew())
		assert.Equal(t, "25.00", o.Total().String())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("total is independent of line order", func(t *testing.T) {
		a := mustLine(t, 2, "10.00")
		b := mustLine(t, 1, "5.00")
		c := mustLine(t, 3, "1.25")

		o1, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []order.Line{a, b, c})
		require.NoError(t, err)
		o2, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []order.Line{c, b, a})
		require.NoError(t, err)

		assert.True(t, o1.Total().IsEqual(o2.Total()))
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, "10.00")}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), time.Now(), lines)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, time.Now(), lines)
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 2, "10.00")}
		crewID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &crewID,
			order.OutForDelivery, kernel.MustMoney("20.00"), time.Now(), lines,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DeliveryCrew())
		assert.True(t, o.DeliveryCrew().IsEqual(crewID))
	})

	t.Run("should reject a stored total that contradicts the lines", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 2, "10.00")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			order.Placed, kernel.MustMoney("19.00"), time.Now(), lines,
		)

		require.Error(t, err)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, "10.00")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			order.Unknown, kernel.MustMoney("10.00"), time.Now(), lines,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should accept a constructed order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]order.Line{mustLine(t, 1, "10.00")})
		require.NoError(t, err)

		require.NoError(t, o.Validate())
	})
}

func TestOrder_AssignDeliveryCrew(t *testing.T) {
	newPlacedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]order.Line{mustLine(t, 1, "10.00")})
		require.NoError(t, err)
		return o
	}

	t.Run("should assign crew without changing status", func(t *testing.T) {
		o := newPlacedOrder(t)
		crewID := kernel.NewUUID()

		require.NoError(t, o.AssignDeliveryCrew(crewID))

		require.NotNil(t, o.DeliveryCrew())
		assert.True(t, o.DeliveryCrew().IsEqual(crewID))
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should allow reassignment before delivery", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.AssignDeliveryCrew(kernel.NewUUID()))

		secondCrew := kernel.NewUUID()
		require.NoError(t, o.AssignDeliveryCrew(secondCrew))

		assert.True(t, o.DeliveryCrew().IsEqual(secondCrew))
	})

	t.Run("should reject assignment on a delivered order", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.CompleteDelivery())

		err := o.AssignDeliveryCrew(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
	})

	t.Run("should reject an invalid crew ID", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.Error(t, o.AssignDeliveryCrew(kernel.UUID{}))
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newPlacedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]order.Line{mustLine(t, 1, "10.00")})
		require.NoError(t, err)
		return o
	}

	t.Run("full lifecycle", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("re-applying the current status is a no-op success", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.StartDelivery())

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("delivered order cannot go back out for delivery", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.CompleteDelivery())

		require.Error(t, o.StartDelivery())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("total never changes through the lifecycle", func(t *testing.T) {
		o := newPlacedOrder(t)
		total := o.Total()

		require.NoError(t, o.AssignDeliveryCrew(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())

		assert.True(t, o.Total().IsEqual(total))
	})
}
