package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Every user owns at most one cart, keyed by user identifier.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	// Lines removed from the aggregate are removed from storage.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByUser retrieves the cart belonging to the given user.
	// Returns ObjectNotFoundError when the user has no cart yet.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// ClearByUser removes every line of the user's cart and reports how many
	// lines were removed. Checkout uses the count to detect a cart that
	// changed between reading it and clearing it.
	ClearByUser(ctx context.Context, userID kernel.UUID) (int, error)
}
