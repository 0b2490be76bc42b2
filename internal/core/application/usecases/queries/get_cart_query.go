package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the caller's own cart lines.
// A user without a cart gets an empty response, not an error.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to retrieve a user's cart.
func NewGetCartQuery(callerID kernel.UUID) (GetCartQuery, error) {
	q := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCallerID(callerID); err != nil {
		return GetCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CallerID returns the identifier of the cart owner.
func (q GetCartQuery) CallerID() kernel.UUID {
	return q.callerID
}

func (q *GetCartQuery) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	q.callerID = callerID
	return nil
}

// CartLineResponse represents one cart line in the read model.
type CartLineResponse struct {
	MenuItemID    kernel.UUID
	MenuItemTitle string
	Quantity      int
	UnitPrice     kernel.Money
	LineTotal     kernel.Money
}

// GetCartQueryResponse represents the caller's cart with its running total.
type GetCartQueryResponse struct {
	Lines []CartLineResponse
	Total kernel.Money
}
