package queries

import (
	"context"
	"database/sql"
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemQueryHandler retrieves one menu item from the database.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single menu item queries.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the query to retrieve one menu item.
// Returns ObjectNotFoundError when the item does not exist.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var item MenuItemResponse
	var id, categoryID uuid.UUID
	var price decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.category_id,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = ?
	`, query.ItemID().String()).Row()

	err := row.Scan(
		&id,
		&item.Title,
		&price,
		&categoryID,
		&item.CategoryTitle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MenuItemResponse{}, errs.NewObjectNotFoundError("itemID", query.ItemID())
		}
		return MenuItemResponse{}, err
	}

	item.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}

	item.CategoryID, err = kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return MenuItemResponse{}, err
	}

	item.Price = kernel.NewMoneyFromDecimal(price)
	return item, nil
}
