package menu

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category was not created
// through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items, e.g. "Mains" or "Desserts".
type Category struct {
	id    kernel.UUID
	title string

	isConstructed bool
}

// NewCategory creates a category with a non-empty title.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Category{
		id:            id,
		title:         title,
		isConstructed: true,
	}, nil
}

// RestoreCategory reconstructs a category from persistent storage.
func RestoreCategory(id kernel.UUID, title string) (*Category, error) {
	return NewCategory(id, title)
}

// Validate ensures the Category was created through a factory method.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the category title.
func (c *Category) Title() string {
	return c.title
}
