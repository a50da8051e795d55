package contact

import (
	"context"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type CreateContactInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Country   string
	Zip       string
	Message   string
	Subscribe bool
}

type ListFilter struct {
	// Search matches name or email, case-insensitively.
	Search string
	Limit  int
	Offset int
}

type Repository interface {
	Insert(ctx context.Context, in CreateContactInput) (*domain.Contact, error)
	// List returns newest-first contacts plus the total matching count.
	List(ctx context.Context, filter ListFilter) ([]domain.Contact, int, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
