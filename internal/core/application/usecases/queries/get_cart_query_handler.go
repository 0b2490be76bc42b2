package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a user's cart lines from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart read queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to retrieve the caller's cart.
// Returns an empty response when the user has no cart or no lines.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Lines: make([]CartLineResponse, 0),
		Total: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.menu_item_id,
			mi.title,
			ci.quantity,
			ci.unit_price,
			ci.line_total
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN menu_items mi ON mi.id = ci.menu_item_id
		WHERE c.user_id = ?
		ORDER BY mi.title
	`, query.CallerID().String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineResponse
		var menuItemID uuid.UUID
		var unitPrice, lineTotal decimal.Decimal

		err = rows.Scan(
			&menuItemID,
			&line.MenuItemTitle,
			&line.Quantity,
			&unitPrice,
			&lineTotal,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		line.UnitPrice = kernel.NewMoneyFromDecimal(unitPrice)
		line.LineTotal = kernel.NewMoneyFromDecimal(lineTotal)

		response.Total = response.Total.Add(line.LineTotal)
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
