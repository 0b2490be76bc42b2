package cart

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart represents a user's pending, uncommitted selection of menu items.
// It is an aggregate root holding at most one line per menu item.
//
// Cart follows these invariants:
//   - Must have a valid unique identifier and owner
//   - At most one line per menu item: re-adding an item replaces its
//     quantity and total rather than appending a duplicate row
//   - Every line's total equals its unit price times its quantity
//
// A cart is emptied either explicitly (delete-all) or implicitly when a
// successful checkout converts it into an order.
type Cart struct {
	id     kernel.UUID
	userID kernel.UUID

	// lines hold the pending selections, one per distinct menu item
	lines []Line

	isConstructed bool
}

// NewCart creates an empty cart for a user.
func NewCart(id, userID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart aggregate from persistent storage.
// Rejects duplicate lines for the same menu item.
func RestoreCart(id, userID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if _, exists := cart.lineIndex(line.menuItemID); exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("menu item %s appears more than once", line.menuItemID))
		}
		cart.lines = append(cart.lines, line)
	}

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed through a factory method.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the cart owner's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Lines returns the pending selections.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the sum of all line totals.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.lineTotal)
	}
	return total
}

// Put adds a menu item selection or replaces an existing one.
//
// The unit price is copied from the current menu item price by the caller;
// the cart never looks prices up itself. If a line for the menu item
// already exists, its quantity and total are overwritten (replace
// semantics, not additive).
//
// Returns a validation error if the menu item ID is invalid, the quantity
// is not positive, or the unit price is not positive.
func (c *Cart) Put(menuItemID kernel.UUID, unitPrice kernel.Money, quantity int) error {
	line, err := NewLine(menuItemID, quantity, unitPrice)
	if err != nil {
		return err
	}

	if idx, exists := c.lineIndex(menuItemID); exists {
		c.lines[idx] = line
		return nil
	}

	c.lines = append(c.lines, line)
	return nil
}

// Clear removes every line. Clearing an already empty cart succeeds.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) lineIndex(menuItemID kernel.UUID) (int, bool) {
	for idx, line := range c.lines {
		if line.menuItemID.IsEqual(menuItemID) {
			return idx, true
		}
	}
	return 0, false
}
