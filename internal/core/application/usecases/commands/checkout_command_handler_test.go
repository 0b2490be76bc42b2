package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithLines(t *testing.T, userID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	require.NoError(t, c.Put(kernel.NewUUID(), kernel.MustMoney("10.00"), 2))
	require.NoError(t, c.Put(kernel.NewUUID(), kernel.MustMoney("5.00"), 1))
	return c
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", mock.Anything, userID).Return(cartWithLines(t, userID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed := args.Get(1).(*order.Order)
				require.True(t, placed.ID().IsEqual(orderID))
				require.True(t, placed.CustomerID().IsEqual(userID))
				require.Equal(t, order.Placed, placed.Status())
				require.Len(t, placed.Lines(), 2)
				require.True(t, placed.Total().IsEqual(kernel.MustMoney("25.00")))
			}).
			Return(nil).Once(),
		cartRepo.On("ClearByUser", mock.Anything, userID).Return(2, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), userID)
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", mock.Anything, userID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_NoCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", mock.Anything, userID).Return(cartWithLines(t, userID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		// a concurrent checkout already drained one of the two lines
		cartRepo.On("ClearByUser", mock.Anything, userID).Return(1, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCheckoutConflict)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCheckoutCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
