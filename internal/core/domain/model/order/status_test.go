package order_test

import (
	"fmt"
	"testing"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.OutForDelivery))
		assert.Equal(t, 3, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.OutForDelivery,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	testCases := map[order.Status]string{
		order.Unknown:        "Unknown",
		order.Placed:         "Placed",
		order.OutForDelivery: "OutForDelivery",
		order.Delivered:      "Delivered",
		order.Status(99):     "Unknown",
	}

	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_StartDelivery(t *testing.T) {
	t.Run("should transition from Placed", func(t *testing.T) {
		newStatus, err := order.Placed.StartDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, newStatus)
	})

	t.Run("should allow re-applying OutForDelivery", func(t *testing.T) {
		newStatus, err := order.OutForDelivery.StartDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, newStatus)
	})

	t.Run("should not regress a delivered order", func(t *testing.T) {
		_, err := order.Delivered.StartDelivery()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.Unknown.StartDelivery()

		require.Error(t, err)
	})
}

func TestStatus_CompleteDelivery(t *testing.T) {
	t.Run("should transition from OutForDelivery", func(t *testing.T) {
		newStatus, err := order.OutForDelivery.CompleteDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should allow closing a Placed order directly", func(t *testing.T) {
		newStatus, err := order.Placed.CompleteDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should allow re-applying Delivered", func(t *testing.T) {
		newStatus, err := order.Delivered.CompleteDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.Unknown.CompleteDelivery()

		require.Error(t, err)
	})
}
