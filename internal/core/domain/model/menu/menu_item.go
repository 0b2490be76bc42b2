package menu

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrPriceIsNotPositive is returned when a menu item price is zero or negative.
	ErrPriceIsNotPositive = errs.NewValueIsInvalidError("price must be greater than 0")
)

// MenuItem is a sellable catalog entry.
//
// Invariants:
//   - Must have a valid unique identifier and category reference
//   - Title is non-empty
//   - Price is strictly positive
//
// Carts and order lines copy the price at the moment they reference the
// item (snapshot, not live join), so mutations here never affect them.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	isConstructed bool
}

// NewMenuItem creates a menu item with a positive price.
func NewMenuItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID) (*MenuItem, error) {
	item := &MenuItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistent storage.
func RestoreMenuItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID) (*MenuItem, error) {
	return NewMenuItem(id, title, price, categoryID)
}

// Validate ensures the MenuItem was created through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Title returns the menu item title.
func (m *MenuItem) Title() string {
	return m.title
}

// Price returns the current price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// CategoryID returns the category reference.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Rename changes the menu item title.
func (m *MenuItem) Rename(title string) error {
	return m.setTitle(title)
}

// Reprice changes the menu item price. Existing cart lines and order lines
// keep the price they copied when they were created.
func (m *MenuItem) Reprice(price kernel.Money) error {
	return m.setPrice(price)
}

// Recategorize moves the menu item to another category.
func (m *MenuItem) Recategorize(categoryID kernel.UUID) error {
	return m.setCategoryID(categoryID)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsNotPositive
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}
