package identity

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrIdentityIsNotConstructed is returned when an Identity was not created
	// through NewIdentity or RestoreIdentity.
	ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

	// ErrRoleNotHeld is returned when removing a role the identity does not hold.
	ErrRoleNotHeld = errors.New("identity does not hold this role")
)

// Identity represents a platform user as seen by access control: a stable
// identifier, a login name, the staff (admin) flag, and the set of roles
// granted through group membership.
//
// Invariants:
//   - Must have a valid unique identifier and non-empty username
//   - Holds each role at most once
//   - Role grants are idempotent; revokes of a role not held fail with ErrRoleNotHeld
type Identity struct {
	id       kernel.UUID
	username string
	isStaff  bool
	roles    []Role

	isConstructed bool
}

// NewIdentity creates an identity with no roles.
func NewIdentity(id kernel.UUID, username string, isStaff bool) (*Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	return &Identity{
		id:            id,
		username:      username,
		isStaff:       isStaff,
		isConstructed: true,
	}, nil
}

// RestoreIdentity reconstructs an identity with its persisted role set.
func RestoreIdentity(id kernel.UUID, username string, isStaff bool, roles []Role) (*Identity, error) {
	ident, err := NewIdentity(id, username, isStaff)
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if err = role.Validate(); err != nil {
			return nil, err
		}
		if ident.HasRole(role) {
			return nil, errs.NewValueIsInvalidErrorWithCause("roles",
				fmt.Errorf("role %s is duplicated", role))
		}
		ident.roles = append(ident.roles, role)
	}

	return ident, nil
}

// Validate ensures the Identity was created through a factory method.
func (i *Identity) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// ID returns the identity's unique identifier.
func (i *Identity) ID() kernel.UUID {
	return i.id
}

// Username returns the login name.
func (i *Identity) Username() string {
	return i.username
}

// IsStaff reports whether the identity has the admin flag.
func (i *Identity) IsStaff() bool {
	return i.isStaff
}

// Roles returns the roles the identity currently holds.
func (i *Identity) Roles() []Role {
	return i.roles
}

// HasRole reports whether the identity holds the given role.
func (i *Identity) HasRole(role Role) bool {
	for _, held := range i.roles {
		if held == role {
			return true
		}
	}
	return false
}

// GrantRole adds a role to the identity. Granting a role that is already
// held is a no-op success.
func (i *Identity) GrantRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if i.HasRole(role) {
		return nil
	}

	i.roles = append(i.roles, role)
	return nil
}

// RevokeRole removes a single role, leaving any other roles intact.
// Returns ErrRoleNotHeld if the identity does not currently hold the role.
func (i *Identity) RevokeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	for idx, held := range i.roles {
		if held == role {
			i.roles = append(i.roles[:idx], i.roles[idx+1:]...)
			return nil
		}
	}
	return ErrRoleNotHeld
}
