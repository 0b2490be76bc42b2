package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to change an existing menu item.
// Price changes never touch cart or order lines, which keep their own
// snapshots of the price at the moment they were written.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to change a menu item.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	title string,
	price kernel.Money,
	categoryID kernel.UUID,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item being changed.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the new title.
func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the new category.
func (c UpdateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
