package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add an item to the menu catalog.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates that identifiers are valid, title is not empty and price is positive.
func NewCreateMenuItemCommand(
	itemID kernel.UUID,
	title string,
	price kernel.Money,
	categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier the new menu item will be created under.
func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the menu item title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the menu item price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the category the item belongs to.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
