package cart

import (
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// Line is one pending selection in a cart: a menu item, the quantity, and
// the unit price copied from the menu at the time the item was added.
//
// Invariant: lineTotal always equals unitPrice × quantity.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
}

// NewLine creates a cart line, deriving the line total.
func NewLine(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return Line{}, errs.NewValueIsInvalidError("unit price")
	}

	return Line{
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  unitPrice.Mul(quantity),
	}, nil
}

// MenuItemID returns the selected menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the selected quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price copied from the menu item when the line was created.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// LineTotal returns unit price × quantity.
func (l Line) LineTotal() kernel.Money {
	return l.lineTotal
}
