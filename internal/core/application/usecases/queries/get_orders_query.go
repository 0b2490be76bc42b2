package queries

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to the caller.
// Staff and managers see every order, delivery crew see orders assigned to
// them, customers see their own.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	caller identity.Caller

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders for a caller.
func NewGetOrdersQuery(caller identity.Caller) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCaller(caller); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Caller returns the identity the listing is scoped to.
func (q GetOrdersQuery) Caller() identity.Caller {
	return q.caller
}

func (q *GetOrdersQuery) setCaller(caller identity.Caller) error {
	if caller.IsAnonymous() {
		return errors.New("caller is required")
	}

	q.caller = caller
	return nil
}

// OrderResponse represents an order in the read model.
// DeliveryCrewID is nil until crew is assigned.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         string
	Total          kernel.Money
	CreatedAt      time.Time
}

// OrderLineResponse represents one immutable order line in the read model.
type OrderLineResponse struct {
	MenuItemID    kernel.UUID
	MenuItemTitle string
	Quantity      int
	UnitPrice     kernel.Money
	Price         kernel.Money
}

// GetOrderQueryResponse represents a single order with its lines.
type GetOrderQueryResponse struct {
	Order OrderResponse
	Lines []OrderLineResponse
}
