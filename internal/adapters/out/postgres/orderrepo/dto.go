// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders and their lines are written together at checkout;
// lines are immutable snapshots and are never updated afterwards.
package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and crew for the role-scoped listings.
type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryCrewID *uuid.UUID     `gorm:"type:uuid;index"`
	Status         int
	Total          decimal.Decimal `gorm:"type:numeric"`
	CreatedAt      time.Time
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one immutable order line.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric"`
	Price      decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := aggregate.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Decimal(),
			Price:      line.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         int(aggregate.Status()),
		Total:          aggregate.Total().Decimal(),
		CreatedAt:      aggregate.CreatedAt(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.RestoreLine(
			menuItemID,
			item.Quantity,
			kernel.NewMoneyFromDecimal(item.UnitPrice),
			kernel.NewMoneyFromDecimal(item.Price),
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		crewID,
		order.Status(dto.Status),
		kernel.NewMoneyFromDecimal(dto.Total),
		dto.CreatedAt,
		lines,
	)
}
