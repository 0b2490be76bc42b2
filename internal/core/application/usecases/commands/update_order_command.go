package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("order update carries neither crew nor status")

	// ErrInvalidAssignment is returned when the assignee of an order does not
	// hold the delivery crew role.
	ErrInvalidAssignment = errors.New("assignee is not a delivery crew member")
)

// UpdateOrderCommand represents a request to assign delivery crew and/or move
// an order through its lifecycle. What the caller may change depends on their
// role: managers and staff may set both fields, delivery crew may only change
// the status of orders assigned to them.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	caller         identity.Caller
	orderID        kernel.UUID
	deliveryCrewID *kernel.UUID
	status         *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to mutate an order.
// At least one of deliveryCrewID and status must be provided.
func NewUpdateOrderCommand(
	caller identity.Caller,
	orderID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setDeliveryCrewID(deliveryCrewID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if deliveryCrewID == nil && status == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Caller returns the identity performing the update.
func (c UpdateOrderCommand) Caller() identity.Caller {
	return c.caller
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryCrewID returns the crew member to assign, or nil when
// the assignment is not being changed.
func (c UpdateOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// Status returns the target lifecycle status, or nil when the status
// is not being changed.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setCaller(caller identity.Caller) error {
	if caller.IsAnonymous() {
		return errors.New("caller is required")
	}

	c.caller = caller
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDeliveryCrewID(deliveryCrewID *kernel.UUID) error {
	if deliveryCrewID == nil {
		return nil
	}

	if err := deliveryCrewID.Validate(); err != nil {
		return err
	}

	id := *deliveryCrewID
	c.deliveryCrewID = &id
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}
