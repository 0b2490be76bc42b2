package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrRemoveGroupMemberCommandIsNotConstructed = errors.New(
	"RemoveGroupMemberCommand must be created via NewRemoveGroupMemberCommand constructor",
)

// RemoveGroupMemberCommand represents a request to revoke a role from a user.
// The user's other roles are untouched.
type RemoveGroupMemberCommand struct { //nolint:recvcheck //using for validation
	role       identity.Role
	identityID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveGroupMemberCommand creates a command to revoke a role by user identifier.
func NewRemoveGroupMemberCommand(role identity.Role, identityID kernel.UUID) (RemoveGroupMemberCommand, error) {
	cmd := RemoveGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setIdentityID(identityID),
	); err != nil {
		return RemoveGroupMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGroupMemberCommandIsNotConstructed)
}

// Role returns the role being revoked.
func (c RemoveGroupMemberCommand) Role() identity.Role {
	return c.role
}

// IdentityID returns the identifier of the target user.
func (c RemoveGroupMemberCommand) IdentityID() kernel.UUID {
	return c.identityID
}

func (c *RemoveGroupMemberCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RemoveGroupMemberCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}

	c.identityID = identityID
	return nil
}
