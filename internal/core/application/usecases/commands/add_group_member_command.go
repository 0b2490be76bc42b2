package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrAddGroupMemberCommandIsNotConstructed = errors.New(
	"AddGroupMemberCommand must be created via NewAddGroupMemberCommand constructor",
)

// AddGroupMemberCommand represents a request to grant a role to a user,
// looked up by username. Granting a role the user already holds succeeds.
type AddGroupMemberCommand struct { //nolint:recvcheck //using for validation
	role     identity.Role
	username string

	guard guard.ConstructorGuard
}

// NewAddGroupMemberCommand creates a command to grant a role by username.
func NewAddGroupMemberCommand(role identity.Role, username string) (AddGroupMemberCommand, error) {
	cmd := AddGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setUsername(username),
	); err != nil {
		return AddGroupMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupMemberCommandIsNotConstructed)
}

// Role returns the role being granted.
func (c AddGroupMemberCommand) Role() identity.Role {
	return c.role
}

// Username returns the username of the target user.
func (c AddGroupMemberCommand) Username() string {
	return c.username
}

func (c *AddGroupMemberCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *AddGroupMemberCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}
