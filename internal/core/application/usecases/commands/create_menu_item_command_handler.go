package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles menu catalog additions.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create menu item command.
// The target category must already exist; otherwise ObjectNotFoundError.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.Title(), cmd.Price(), cmd.CategoryID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()

	if _, err = menuRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
