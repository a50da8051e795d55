package product

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/domain"
	productrepo "github.com/khatkhazana-hub/backend/internal/repository/product"
)

type repo interface {
	List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error)
	GetByIDOrSlug(ctx context.Context, key string) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo repo
}

func New(r productrepo.Repository) *Service {
	return &Service{repo: r}
}

type ListInput struct {
	Category   string
	ActiveOnly bool
}

type CreateInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Tag         string           `json:"tag"`
	Rating      *decimal.Decimal `json:"rating"`
	Reviews     *int             `json:"reviews"`
	InStock     *bool            `json:"inStock"`
	Image       string           `json:"image"`
	Featured    bool             `json:"featured"`
	Active      *bool            `json:"active"`
}

type UpdateInput struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Tag         *string          `json:"tag"`
	Rating      *decimal.Decimal `json:"rating"`
	Reviews     *int             `json:"reviews"`
	InStock     *bool            `json:"inStock"`
	Image       *string          `json:"image"`
	Featured    *bool            `json:"featured"`
	Active      *bool            `json:"active"`
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{Category: in.Category, ActiveOnly: in.ActiveOnly})
}

func (s *Service) Get(ctx context.Context, key string) (*domain.Product, error) {
	return s.repo.GetByIDOrSlug(ctx, key)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" ||
		in.Price == nil || strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Image) == "" {
		return nil, domain.Invalid("title, description, price, category, image are required")
	}
	if in.Price.IsNegative() {
		return nil, domain.Invalid("price must not be negative")
	}

	create := productrepo.CreateProductInput{
		Title:       strings.TrimSpace(in.Title),
		Slug:        Slugify(in.Title),
		Description: in.Description,
		Price:       *in.Price,
		Category:    strings.TrimSpace(in.Category),
		Tag:         in.Tag,
		Rating:      decimal.RequireFromString("4.8"),
		Reviews:     0,
		InStock:     true,
		Image:       in.Image,
		Featured:    in.Featured,
		Active:      true,
	}
	if in.Rating != nil {
		create.Rating = *in.Rating
	}
	if in.Reviews != nil {
		create.Reviews = *in.Reviews
	}
	if in.InStock != nil {
		create.InStock = *in.InStock
	}
	if in.Active != nil {
		create.Active = *in.Active
	}
	p, err := s.repo.Create(ctx, create)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.Invalid("Product with this title already exists")
	}
	return p, err
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	patch := productrepo.UpdateProductInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Tag:         in.Tag,
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		InStock:     in.InStock,
		Image:       in.Image,
		Featured:    in.Featured,
		Active:      in.Active,
	}
	if in.Title != nil {
		slug := Slugify(*in.Title)
		patch.Slug = &slug
	}
	p, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.Invalid("Product with this title already exists")
	}
	return p, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns "War Political" into "war-political".
func Slugify(s string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}
