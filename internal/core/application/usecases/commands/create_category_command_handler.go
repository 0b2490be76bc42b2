package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler handles menu category additions.
type CreateCategoryCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuItemUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create category command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Title())
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

	if err = uow.MenuItemRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
