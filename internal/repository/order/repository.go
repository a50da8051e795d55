package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

// CreateOrderInput captures everything persisted when an order is opened.
// GatewayIntentID must be freshly minted by the gateway; the store enforces
// its uniqueness.
type CreateOrderInput struct {
	Items           []domain.OrderItem
	Subtotal        decimal.Decimal
	Shipping        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	Currency        string
	Customer        domain.CustomerInfo
	GatewayIntentID string
	GatewayStatus   string
	ReceiptEmail    string
	Status          string
}

// ReconciliationPatch is the field-by-field update applied by the
// reconciliation handler. PaidAt is written at most once: the store keeps
// the first non-null value. An empty GatewayChargeID never clears a
// recorded one.
type ReconciliationPatch struct {
	Status          string
	GatewayStatus   string
	GatewayChargeID string
	PaidAt          *time.Time
}

type Repository interface {
	Insert(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	// FindByIntentID locates an order by its gateway intent id. A non-empty
	// orderID additionally narrows the match.
	FindByIntentID(ctx context.Context, intentID, orderID string) (*domain.Order, error)
	ApplyReconciliation(ctx context.Context, orderID string, patch ReconciliationPatch) (*domain.Order, error)
}
