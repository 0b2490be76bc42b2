package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single menu item by identifier.
type GetMenuItemQuery struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query to retrieve one menu item.
func NewGetMenuItemQuery(itemID kernel.UUID) (GetMenuItemQuery, error) {
	q := GetMenuItemQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setItemID(itemID); err != nil {
		return GetMenuItemQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the identifier of the requested menu item.
func (q GetMenuItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

func (q *GetMenuItemQuery) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	q.itemID = itemID
	return nil
}
