package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for filling a cart.
// The unit price is snapshotted from the current menu item at the moment the
// line is written; later menu price changes do not touch existing cart lines.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart fill operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add cart item command.
// Creates the caller's cart on first use. Returns ObjectNotFoundError when
// the menu item does not exist.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByUser(ctx, cmd.CallerID())
	isNewCart := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		aggregate, err = cart.NewCart(kernel.NewUUID(), cmd.CallerID())
		if err != nil {
			return err
		}
		isNewCart = true
	}

	if err = aggregate.Put(cmd.MenuItemID(), menuItem.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, aggregate)
	} else {
		err = cartRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
