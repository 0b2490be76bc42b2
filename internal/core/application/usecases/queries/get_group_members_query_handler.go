package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGroupMembersQueryHandler retrieves role membership from the database.
type GetGroupMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetGroupMembersQueryHandler creates a handler for group membership queries.
func NewGetGroupMembersQueryHandler(db *gorm.DB) GetGroupMembersQueryHandler {
	return GetGroupMembersQueryHandler{db: db}
}

// Handle executes the query to list identities holding the role.
func (h GetGroupMembersQueryHandler) Handle(
	ctx context.Context,
	query GetGroupMembersQuery,
) ([]GroupMemberResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GroupMemberResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.username
		FROM identities i
		JOIN identity_roles ir ON ir.identity_id = i.id
		WHERE ir.role = ?
		ORDER BY i.username
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member GroupMemberResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &member.Username); err != nil {
			return nil, err
		}

		member.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
