// Package menurepo provides data transfer objects and mapping functions for
// menu catalog persistence. It implements the repository pattern for the menu
// domain aggregates, handling the conversion between domain entities and
// database representations.
package menurepo

import (
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDTO represents the database structure for menu categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO represents the database structure for persisting menu items.
// Price is stored as numeric to keep exact decimal arithmetic in SQL.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"index"`
	Price      decimal.Decimal `gorm:"type:numeric"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		CategoryID: item.CategoryID().Bytes(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Title, kernel.NewMoneyFromDecimal(dto.Price), categoryID)
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID().Bytes(),
		Title: category.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreCategory(id, dto.Title)
}
