package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)

	// ErrCartIsEmpty is returned when checkout is attempted with no cart lines.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrCheckoutConflict is returned when the cart changed between reading it
	// and clearing it. A concurrent checkout or cart mutation won the race and
	// the whole transaction is rolled back.
	ErrCheckoutConflict = errors.New("cart changed during checkout")
)

// CheckoutCommand represents a request to turn the caller's cart into an order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), callerID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", cmd.OrderID())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order from a user's cart.
// The order identifier is supplied by the caller so the HTTP layer can report
// it without a second read.
func NewCheckoutCommand(orderID, callerID kernel.UUID) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the identifier of the customer checking out.
func (c CheckoutCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
