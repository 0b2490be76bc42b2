package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// IdentityRepository defines the persistence contract for identity aggregates.
// Role grants and revocations are persisted through Update.
type IdentityRepository interface {
	// Add persists a new identity aggregate to storage.
	Add(ctx context.Context, aggregate *identity.Identity) error

	// Update persists changes to an existing identity aggregate,
	// including its current role set.
	Update(ctx context.Context, aggregate *identity.Identity) error

	// Get retrieves an identity aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)

	// GetByUsername retrieves an identity aggregate by its username.
	// Returns ObjectNotFoundError when no such identity exists.
	GetByUsername(ctx context.Context, username string) (*identity.Identity, error)
}
