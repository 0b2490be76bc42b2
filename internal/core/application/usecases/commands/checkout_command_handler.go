package commands

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// CheckoutCommandHandler turns a cart into an order inside one transaction.
// The order lines snapshot the cart's unit prices; the cart is cleared in the
// same transaction so nothing partial ever commits.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory spanning the cart and order repositories.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Returns ErrCartIsEmpty when the caller has no cart lines and
// ErrCheckoutConflict when the cart changed while the order was being written.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByUser(ctx, cmd.CallerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrCartIsEmpty
		}
		return err
	}

	if aggregate.IsEmpty() {
		return ErrCartIsEmpty
	}

	lines := make([]order.Line, 0, len(aggregate.Lines()))
	for _, cartLine := range aggregate.Lines() {
		line, lineErr := order.NewLine(cartLine.MenuItemID(), cartLine.Quantity(), cartLine.UnitPrice())
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CallerID(), time.Now().UTC(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	removed, err := cartRepo.ClearByUser(ctx, cmd.CallerID())
	if err != nil {
		return err
	}

	if removed != len(lines) {
		return ErrCheckoutConflict
	}

	return uow.Commit(ctx)
}
