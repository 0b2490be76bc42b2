package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles crew assignment and status transitions.
//
// Role rules:
//   - Managers and staff may assign crew and change status. The assignee must
//     hold the delivery crew role, otherwise ErrInvalidAssignment.
//   - Delivery crew may only change the status of orders assigned to them.
//     A crew field in their request is silently ignored.
//   - Everyone else gets services.ErrForbidden.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Returns the order's status after the update so callers can report the
// transition that occurred.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	caller := cmd.Caller()
	isManager := caller.IsStaff() || caller.HasRole(identity.RoleManager)
	isCrew := caller.HasRole(identity.RoleDeliveryCrew)

	if !isManager && !isCrew {
		return order.Unknown, services.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if isManager {
		if err = h.assignCrew(ctx, uow, aggregate, cmd); err != nil {
			return order.Unknown, err
		}
	} else if !h.isAssignedTo(aggregate, caller) {
		return order.Unknown, services.ErrForbidden
	}

	if err = h.applyStatus(aggregate, cmd.Status()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return aggregate.Status(), nil
}

func (h *UpdateOrderCommandHandler) assignCrew(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	cmd UpdateOrderCommand,
) error {
	if cmd.DeliveryCrewID() == nil {
		return nil
	}

	assignee, err := uow.IdentityRepository().Get(ctx, *cmd.DeliveryCrewID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrInvalidAssignment
		}
		return err
	}

	if !assignee.HasRole(identity.RoleDeliveryCrew) {
		return ErrInvalidAssignment
	}

	return aggregate.AssignDeliveryCrew(assignee.ID())
}

func (h *UpdateOrderCommandHandler) isAssignedTo(aggregate *order.Order, caller identity.Caller) bool {
	crewID := aggregate.DeliveryCrew()
	return crewID != nil && crewID.IsEqual(caller.ID())
}

func (h *UpdateOrderCommandHandler) applyStatus(aggregate *order.Order, status *order.Status) error {
	if status == nil {
		return nil
	}

	switch *status {
	case order.OutForDelivery:
		return aggregate.StartDelivery()
	case order.Delivered:
		return aggregate.CompleteDelivery()
	case order.Placed:
		if aggregate.Status() == order.Placed {
			return nil
		}
		return errs.NewValueIsInvalidError("status")
	default:
		return errs.NewValueIsInvalidError("status")
	}
}
