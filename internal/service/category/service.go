package category

import (
	"context"
	"strings"

	"github.com/khatkhazana-hub/backend/internal/domain"
	categoryrepo "github.com/khatkhazana-hub/backend/internal/repository/category"
	"github.com/khatkhazana-hub/backend/internal/service/product"
)

type repo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in categoryrepo.CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in categoryrepo.UpdateCategoryInput) (*domain.Category, error)
	Reorder(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo repo
}

func New(r categoryrepo.Repository) *Service {
	return &Service{repo: r}
}

type CreateInput struct {
	Name string `json:"name"`
}

type UpdateInput struct {
	Name      *string `json:"name"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sortOrder"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	return s.repo.Create(ctx, categoryrepo.CreateCategoryInput{
		Name: name,
		Slug: product.Slugify(name),
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error) {
	patch := categoryrepo.UpdateCategoryInput{
		Active:    in.Active,
		SortOrder: in.SortOrder,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("name must not be empty")
		}
		slug := product.Slugify(name)
		patch.Name = &name
		patch.Slug = &slug
	}
	return s.repo.Update(ctx, id, patch)
}

// Reorder persists ids as the new ascending sort order.
func (s *Service) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.Invalid("ids must not be empty")
	}
	return s.repo.Reorder(ctx, ids)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
