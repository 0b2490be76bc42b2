package identity

import (
	"littlelemon/internal/core/domain/model/kernel"
)

// Caller is the resolved identity of the current request: who is calling,
// whether they are staff, and which roles they hold. The authentication
// boundary builds a Caller before any use case runs; the zero value
// represents an anonymous caller.
//
// Caller is a read-only value; changing group membership goes through the
// Identity aggregate.
type Caller struct {
	id      kernel.UUID
	isStaff bool
	roles   []Role
}

// NewCaller creates a caller for an authenticated identity.
func NewCaller(id kernel.UUID, isStaff bool, roles []Role) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return Caller{}, err
		}
	}

	return Caller{
		id:      id,
		isStaff: isStaff,
		roles:   append([]Role(nil), roles...),
	}, nil
}

// CallerFor builds the caller view of an identity.
func CallerFor(ident *Identity) (Caller, error) {
	if err := ident.Validate(); err != nil {
		return Caller{}, err
	}
	return NewCaller(ident.ID(), ident.IsStaff(), ident.Roles())
}

// AnonymousCaller returns the caller value for unauthenticated requests.
func AnonymousCaller() Caller {
	return Caller{}
}

// ID returns the caller's identity ID. Only meaningful when not anonymous.
func (c Caller) ID() kernel.UUID {
	return c.id
}

// IsAnonymous reports whether the request carried no authenticated identity.
func (c Caller) IsAnonymous() bool {
	return c.id.Validate() != nil
}

// IsStaff reports whether the caller has the admin flag.
func (c Caller) IsStaff() bool {
	return c.isStaff
}

// HasRole reports whether the caller holds the given role.
func (c Caller) HasRole(role Role) bool {
	for _, held := range c.roles {
		if held == role {
			return true
		}
	}
	return false
}

// Roles returns the roles the caller holds.
func (c Caller) Roles() []Role {
	return c.roles
}
