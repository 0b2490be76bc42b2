package queries

import (
	"context"
	"database/sql"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns ObjectNotFoundError when the order does not exist and
// services.ErrForbidden when the caller may not see it.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			status,
			total,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	orderResponse, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if err = h.checkVisibility(query.Caller(), orderResponse); err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order: orderResponse,
		Lines: lines,
	}, nil
}

func (h GetOrderQueryHandler) checkVisibility(caller identity.Caller, response OrderResponse) error {
	if caller.IsStaff() || caller.HasRole(identity.RoleManager) {
		return nil
	}

	if caller.HasRole(identity.RoleDeliveryCrew) {
		if response.DeliveryCrewID != nil && response.DeliveryCrewID.IsEqual(caller.ID()) {
			return nil
		}
		return services.ErrForbidden
	}

	if response.CustomerID.IsEqual(caller.ID()) {
		return nil
	}
	return services.ErrForbidden
}

// loadLines reads the order's line snapshots. The menu item may have been
// deleted or renamed since checkout, so the join only decorates the line
// with the current title and never filters it out.
func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id,
			COALESCE(mi.title, ''),
			oi.quantity,
			oi.unit_price,
			oi.price
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY oi.menu_item_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)

	for rows.Next() {
		var line OrderLineResponse
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		err = rows.Scan(
			&menuItemID,
			&line.MenuItemTitle,
			&line.Quantity,
			&unitPrice,
			&price,
		)
		if err != nil {
			return nil, err
		}

		line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:])
		if err != nil {
			return nil, err
		}

		line.UnitPrice = kernel.NewMoneyFromDecimal(unitPrice)
		line.Price = kernel.NewMoneyFromDecimal(price)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
