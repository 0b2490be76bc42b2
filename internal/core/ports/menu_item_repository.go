// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu item aggregates.
type MenuItemRepository interface {
	// Add persists a new menu item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Delete removes a menu item by its unique identifier.
	// Returns ObjectNotFoundError when no such item exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// AddCategory persists a new menu category.
	AddCategory(ctx context.Context, category *menu.Category) error

	// GetCategory retrieves a category by its unique identifier.
	// Returns ObjectNotFoundError when no such category exists.
	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)
}
