package commands

import (
	"context"
)

// AddGroupMemberCommandHandler grants a role to an existing identity.
type AddGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewAddGroupMemberCommandHandler creates a handler for role grant operations.
func NewAddGroupMemberCommandHandler(uowFactory IdentityUoWFactory) AddGroupMemberCommandHandler {
	return AddGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add group member command.
// Returns ObjectNotFoundError when the username is unknown. Re-granting a
// role the user already holds is a no-op success.
func (h *AddGroupMemberCommandHandler) Handle(ctx context.Context, cmd AddGroupMemberCommand) error {
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

	aggregate, err := identityRepo.GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = aggregate.GrantRole(cmd.Role()); err != nil {
		return err
	}

	if err = identityRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
