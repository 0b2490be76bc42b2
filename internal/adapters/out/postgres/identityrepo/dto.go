// Package identityrepo provides data transfer objects and mapping functions
// for identity persistence. Role membership is stored as one row per held
// role, so grants and revocations are row inserts and deletes.
package identityrepo

import (
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IdentityDTO represents the database structure for persisting identities.
type IdentityDTO struct {
	ID       uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Username string            `gorm:"uniqueIndex"`
	IsStaff  bool
	Roles    []IdentityRoleDTO `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for identity entities.
func (IdentityDTO) TableName() string {
	return "identities"
}

// IdentityRoleDTO represents one held role. The composite primary key makes
// re-granting a held role a constraint violation rather than a duplicate row.
type IdentityRoleDTO struct {
	IdentityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role       string    `gorm:"primaryKey"`
}

// TableName specifies the database table name for role membership rows.
func (IdentityRoleDTO) TableName() string {
	return "identity_roles"
}

func fromDomain(aggregate *identity.Identity) IdentityDTO {
	roles := make([]IdentityRoleDTO, 0, len(aggregate.Roles()))
	for _, role := range aggregate.Roles() {
		roles = append(roles, IdentityRoleDTO{
			IdentityID: aggregate.ID().Bytes(),
			Role:       role.String(),
		})
	}

	return IdentityDTO{
		ID:       aggregate.ID().Bytes(),
		Username: aggregate.Username(),
		IsStaff:  aggregate.IsStaff(),
		Roles:    roles,
	}
}

func toDomain(dto IdentityDTO) (*identity.Identity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]identity.Role, 0, len(dto.Roles))
	for _, row := range dto.Roles {
		role, roleErr := identity.ParseRole(row.Role)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return identity.RestoreIdentity(id, dto.Username, dto.IsStaff, roles)
}
