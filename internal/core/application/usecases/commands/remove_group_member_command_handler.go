package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
)

// RemoveGroupMemberCommandHandler revokes a role from an existing identity.
type RemoveGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewRemoveGroupMemberCommandHandler creates a handler for role revoke operations.
func NewRemoveGroupMemberCommandHandler(uowFactory IdentityUoWFactory) RemoveGroupMemberCommandHandler {
	return RemoveGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove group member command.
// Returns ObjectNotFoundError when the identity does not exist or does not
// currently hold the role.
func (h *RemoveGroupMemberCommandHandler) Handle(ctx context.Context, cmd RemoveGroupMemberCommand) error {
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

	identityRepo := uow.IdentityRepository()

	aggregate, err := identityRepo.Get(ctx, cmd.IdentityID())
	if err != nil {
		return err
	}

	if err = aggregate.RevokeRole(cmd.Role()); err != nil {
		if errors.Is(err, identity.ErrRoleNotHeld) {
			return errs.NewObjectNotFoundErrorWithCause("role", cmd.Role().String(), err)
		}
		return err
	}

	if err = identityRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
