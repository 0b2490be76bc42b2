package order

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// Line is an immutable snapshot of one menu item at the moment of checkout.
// It records the quantity and the unit price that were current when the
// order was placed; later menu price changes never affect it.
//
// Invariant: price always equals unitPrice × quantity.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money
}

// NewLine creates a line snapshot, deriving price from unit price and quantity.
//
// Returns an error if the menu item ID is invalid, the quantity is not
// positive, or the unit price is not positive.
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
		price:      unitPrice.Mul(quantity),
	}, nil
}

// RestoreLine reconstructs a line from persistent storage.
// Unlike NewLine it takes the stored price verbatim rather than recomputing
// it, but still rejects a stored price that contradicts the line invariant.
func RestoreLine(menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) (Line, error) {
	line, err := NewLine(menuItemID, quantity, unitPrice)
	if err != nil {
		return Line{}, err
	}
	if !line.price.IsEqual(price) {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("stored price does not equal unit price times quantity"))
	}
	line.price = price
	return line, nil
}

// MenuItemID returns the identifier of the snapshotted menu item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the menu item price captured at checkout time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Price returns the line total (unit price × quantity).
func (l Line) Price() kernel.Money {
	return l.price
}
