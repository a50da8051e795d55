package category

import (
	"context"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type CreateCategoryInput struct {
	Name string
	Slug string
}

// UpdateCategoryInput patches only the non-nil fields.
type UpdateCategoryInput struct {
	Name      *string
	Slug      *string
	Active    *bool
	SortOrder *int
}

type Repository interface {
	// List returns active categories ordered by sort order, then name.
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	// Reorder persists the given id order as ascending sort positions.
	Reorder(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
}
