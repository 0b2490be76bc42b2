package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler handles menu catalog removals.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item removal.
func NewDeleteMenuItemCommandHandler(uowFactory MenuItemUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete menu item command.
// Returns ObjectNotFoundError when the item does not exist.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
