package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler retrieves the menu catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu catalog queries.
// Requires a GORM database connection for query execution.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu items.
// Returns a slice of menu item read models sorted by title, with each
// item's category title resolved.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.category_id,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		ORDER BY mi.title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item MenuItemResponse
		var id, categoryID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&item.Title,
			&price,
			&categoryID,
			&item.CategoryTitle,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		item.CategoryID, err = kernel.UUIDFromBytes(categoryID[:])
		if err != nil {
			return nil, err
		}

		item.Price = kernel.NewMoneyFromDecimal(price)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
