package identityrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityRepository implements IdentityRepository using GORM.
type GormIdentityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIdentityRepository creates a new GORM identity repository.
func NewGormIdentityRepository(db *gorm.DB, tracker aggregateTracker) *GormIdentityRepository {
	return &GormIdentityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new identity with its roles to the database.
func (r *GormIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the identity's role rows to match the aggregate.
func (r *GormIdentityRepository) Update(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&IdentityDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"username": dto.Username,
			"is_staff": dto.IsStaff,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("identity", aggregate.ID().String())
	}

	if err := db.Delete(&IdentityRoleDTO{}, "identity_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Roles) > 0 {
		if err := db.Create(&dto.Roles).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an identity by ID, including its roles.
func (r *GormIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves an identity by username, including its roles.
func (r *GormIdentityRepository) GetByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto IdentityDTO
	err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
