package category

import (
	"context"
	"errors"
	"testing"

	"github.com/khatkhazana-hub/backend/internal/domain"
	categoryrepo "github.com/khatkhazana-hub/backend/internal/repository/category"
)

type stubRepo struct {
	lastCreate categoryrepo.CreateCategoryInput
	lastUpdate categoryrepo.UpdateCategoryInput
	reordered  []string
}

func (s *stubRepo) List(context.Context) ([]domain.Category, error) { return nil, nil }

func (s *stubRepo) Create(_ context.Context, in categoryrepo.CreateCategoryInput) (*domain.Category, error) {
	s.lastCreate = in
	return &domain.Category{ID: "c1", Name: in.Name, Slug: in.Slug}, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, in categoryrepo.UpdateCategoryInput) (*domain.Category, error) {
	s.lastUpdate = in
	return &domain.Category{ID: "c1"}, nil
}

func (s *stubRepo) Reorder(_ context.Context, ids []string) error {
	s.reordered = ids
	return nil
}

func (s *stubRepo) Delete(context.Context, string) error { return nil }

func TestCreateRequiresName(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	var invalid *domain.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateSlugsName(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	cat, err := svc.Create(context.Background(), CreateInput{Name: "  War Political "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.lastCreate.Name != "War Political" || repo.lastCreate.Slug != "war-political" {
		t.Fatalf("create input = %+v", repo.lastCreate)
	}
	if cat.Slug != "war-political" {
		t.Fatalf("slug = %q", cat.Slug)
	}
}

func TestUpdateReslugsOnRename(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	name := "Love Letters"
	if _, err := svc.Update(context.Background(), "c1", UpdateInput{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.lastUpdate.Slug == nil || *repo.lastUpdate.Slug != "love-letters" {
		t.Fatalf("slug not re-derived: %v", repo.lastUpdate.Slug)
	}
}

func TestReorderRejectsEmpty(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	err := svc.Reorder(context.Background(), nil)
	var invalid *domain.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
