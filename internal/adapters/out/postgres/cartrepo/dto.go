// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. Each user owns at most one cart row; cart lines live in a
// child table keyed by (cart_id, menu_item_id) so replace semantics map to an
// upsert of a single row.
package cartrepo

import (
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Items  []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. The composite primary key enforces
// one line per menu item within a cart.
type CartItemDTO struct {
	CartID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric"`
	LineTotal  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		items = append(items, CartItemDTO{
			CartID:     aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Decimal(),
			LineTotal:  line.LineTotal().Decimal(),
		})
	}

	return CartDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),
		Items:  items,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := cart.NewLine(menuItemID, item.Quantity, kernel.NewMoneyFromDecimal(item.UnitPrice))
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, userID, lines)
}
