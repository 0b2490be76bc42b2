package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetGroupMembersQueryIsNotConstructed = errors.New(
	"GetGroupMembersQuery must be created via NewGetGroupMembersQuery constructor",
)

// GetGroupMembersQuery retrieves the identities holding a role.
type GetGroupMembersQuery struct { //nolint:recvcheck //using for validation
	role identity.Role

	guard guard.ConstructorGuard
}

// NewGetGroupMembersQuery creates a query to list a role's members.
func NewGetGroupMembersQuery(role identity.Role) (GetGroupMembersQuery, error) {
	q := GetGroupMembersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRole(role); err != nil {
		return GetGroupMembersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupMembersQueryIsNotConstructed)
}

// Role returns the role whose members are listed.
func (q GetGroupMembersQuery) Role() identity.Role {
	return q.role
}

func (q *GetGroupMembersQuery) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// GroupMemberResponse represents a role holder in the read model.
type GroupMemberResponse struct {
	ID       kernel.UUID
	Username string
}
