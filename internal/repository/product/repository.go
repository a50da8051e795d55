package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type CreateProductInput struct {
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	Category    string
	Tag         string
	Rating      decimal.Decimal
	Reviews     int
	InStock     bool
	Image       string
	Featured    bool
	Active      bool
}

// UpdateProductInput patches only the non-nil fields.
type UpdateProductInput struct {
	Title       *string
	Slug        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Tag         *string
	Rating      *decimal.Decimal
	Reviews     *int
	InStock     *bool
	Image       *string
	Featured    *bool
	Active      *bool
}

type ListFilter struct {
	Category   string
	ActiveOnly bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	// GetByIDOrSlug resolves either a product id or its slug.
	GetByIDOrSlug(ctx context.Context, key string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
