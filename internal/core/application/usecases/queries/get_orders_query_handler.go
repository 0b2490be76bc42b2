package queries

import (
	"context"
	"database/sql"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves role-scoped order listings from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders visible to the caller.
// Staff and managers see all orders. Delivery crew see orders assigned to
// them. Everyone else sees only their own orders.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseQuery := `
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			status,
			total,
			created_at
		FROM orders
	`

	caller := query.Caller()
	var rows *sql.Rows
	var err error

	switch {
	case caller.IsStaff() || caller.HasRole(identity.RoleManager):
		rows, err = h.db.WithContext(ctx).Raw(baseQuery + " ORDER BY created_at DESC").Rows()
	case caller.HasRole(identity.RoleDeliveryCrew):
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+" WHERE delivery_crew_id = ? ORDER BY created_at DESC",
			caller.ID().String(),
		).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+" WHERE customer_id = ? ORDER BY created_at DESC",
			caller.ID().String(),
		).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// rowScanner covers both sql.Rows and sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var response OrderResponse
	var id, customerID uuid.UUID
	var crewID uuid.NullUUID
	var status int
	var total decimal.Decimal

	err := row.Scan(
		&id,
		&customerID,
		&crewID,
		&status,
		&total,
		&response.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	if crewID.Valid {
		crew, crewErr := kernel.UUIDFromBytes(crewID.UUID[:])
		if crewErr != nil {
			return OrderResponse{}, crewErr
		}
		response.DeliveryCrewID = &crew
	}

	response.Status = order.Status(status).String()
	response.Total = kernel.NewMoneyFromDecimal(total)
	return response, nil
}
