package subscription

import (
	"context"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, email string) (*domain.Subscription, error)
	FindByEmail(ctx context.Context, email string) (*domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Delete(ctx context.Context, id string) error
}
