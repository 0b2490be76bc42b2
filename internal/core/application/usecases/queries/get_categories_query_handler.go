package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoriesQueryHandler retrieves menu categories from the database.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category queries.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all categories sorted by title.
func (h GetCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetCategoriesQuery,
) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]CategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title
		FROM categories
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category CategoryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &category.Title); err != nil {
			return nil, err
		}

		category.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
