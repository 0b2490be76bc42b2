package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written once at checkout and later mutated by crew assignment
// and status transitions; their lines are immutable price snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines never change after checkout, so only the order row is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its lines by the order identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
