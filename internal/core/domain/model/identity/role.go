package identity

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Role is a named permission grouping an identity may hold.
// An identity holds zero or more roles; the staff (admin) flag lives on
// the identity itself, outside the group system.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleManager marks restaurant managers.
	RoleManager

	// RoleDeliveryCrew marks delivery crew members.
	RoleDeliveryCrew
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "unknown",
		RoleManager:      "manager",
		RoleDeliveryCrew: "delivery-crew",
	}
}

// ParseRole converts a wire-format group name into a Role.
// Accepted values are "manager" and "delivery-crew".
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleManager && r != RoleDeliveryCrew {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-format name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
