// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves the full menu catalog.
// Open to every authenticated caller.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query to retrieve all menu items.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse represents a menu item in the read model,
// including the resolved category title.
type MenuItemResponse struct {
	ID            kernel.UUID
	Title         string
	Price         kernel.Money
	CategoryID    kernel.UUID
	CategoryTitle string
}
