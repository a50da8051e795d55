// Package checkout orchestrates payment-intent creation and order
// reconciliation against the payment gateway.
package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/catalog"
	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/payment"
	"github.com/khatkhazana-hub/backend/internal/pricing"
	orderrepo "github.com/khatkhazana-hub/backend/internal/repository/order"
)

// ErrMissingIntentID is returned when confirm is called without a payment
// intent identifier.
var ErrMissingIntentID = errors.New("paymentIntentId is required")

type orderRepo interface {
	Insert(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	FindByIntentID(ctx context.Context, intentID, orderID string) (*domain.Order, error)
	ApplyReconciliation(ctx context.Context, orderID string, patch orderrepo.ReconciliationPatch) (*domain.Order, error)
}

// Service owns order creation and is the only writer of reconciliation
// updates. The gateway client is long-lived and shared; a nil gateway
// means checkout is not configured for this deployment.
type Service struct {
	catalog  *catalog.Snapshot
	policy   pricing.Policy
	gateway  payment.Gateway
	orders   orderRepo
	currency string
	logger   *log.Logger
	now      func() time.Time
}

func New(cat *catalog.Snapshot, policy pricing.Policy, gw payment.Gateway, orders orderrepo.Repository, currency string, logger *log.Logger) *Service {
	return &Service{
		catalog:  cat,
		policy:   policy,
		gateway:  gw,
		orders:   orders,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateIntentOutput is what the client needs to complete payment and
// correlate the order later.
type CreateIntentOutput struct {
	ClientSecret    string          `json:"clientSecret"`
	PaymentIntentID string          `json:"paymentIntentId"`
	OrderID         string          `json:"orderId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// CreateIntent prices the cart, opens a gateway intent sized to the total
// and persists the order. The order is written only after the gateway call
// succeeds, so a gateway failure never leaves an orphan order behind.
func (s *Service) CreateIntent(ctx context.Context, lines []pricing.CartLine, customer domain.CustomerInfo) (*CreateIntentOutput, error) {
	if s.gateway == nil {
		return nil, domain.ErrGatewayNotConfigured
	}

	priced, err := pricing.Normalize(s.catalog, s.policy, lines)
	if err != nil {
		return nil, err
	}

	// Total carries exactly two decimals, so the shift to minor units is
	// exact.
	amountMinor := priced.Total.Shift(2).IntPart()

	// The metadata must be enough to reconstruct the order from the
	// gateway side alone if the local write fails after this point.
	intent, err := s.gateway.CreateIntent(ctx, payment.CreateIntentInput{
		AmountMinorUnits: amountMinor,
		Currency:         s.currency,
		Description:      "Khat Khazana order",
		ReceiptEmail:     customer.Email,
		Metadata: map[string]string{
			"customerName":  customer.Name,
			"customerEmail": customer.Email,
			"note":          customer.Note,
			"subtotal":      priced.Subtotal.StringFixed(2),
			"shipping":      priced.Shipping.StringFixed(2),
			"tax":           priced.Tax.StringFixed(2),
		},
	})
	if err != nil {
		s.logger.Printf("create payment intent failed: %v", err)
		return nil, err
	}

	// The gateway is authoritative about what "not yet paid" means; only
	// fall back when it reports nothing at all.
	status := intent.Status
	if status == "" {
		status = domain.StatusRequiresPaymentMethod
	}

	ord, err := s.orders.Insert(ctx, orderrepo.CreateOrderInput{
		Items:           priced.Lines,
		Subtotal:        priced.Subtotal,
		Shipping:        priced.Shipping,
		Tax:             priced.Tax,
		Total:           priced.Total,
		Currency:        s.currency,
		Customer:        customer,
		GatewayIntentID: intent.ID,
		GatewayStatus:   intent.Status,
		ReceiptEmail:    intent.ReceiptEmail,
		Status:          status,
	})
	if err != nil {
		s.logger.Printf("persist order for intent %s failed: %v", intent.ID, err)
		return nil, err
	}

	return &CreateIntentOutput{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		OrderID:         ord.ID,
		Amount:          priced.Total,
		Currency:        s.currency,
	}, nil
}

// ConfirmOutput pairs the reconciled order with the gateway's view of the
// intent.
type ConfirmOutput struct {
	Order         *domain.Order   `json:"order"`
	PaymentIntent *payment.Intent `json:"paymentIntent"`
}

// Confirm re-fetches the authoritative intent status and mirrors it onto
// the order. It is idempotent: re-applying the same gateway status leaves
// the order unchanged, paidAt is set at most once, and a stale
// confirmation never moves the status backward.
func (s *Service) Confirm(ctx context.Context, intentID, orderID string) (*ConfirmOutput, error) {
	if s.gateway == nil {
		return nil, domain.ErrGatewayNotConfigured
	}
	if strings.TrimSpace(intentID) == "" {
		return nil, ErrMissingIntentID
	}

	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.logger.Printf("retrieve payment intent %s failed: %v", intentID, err)
		return nil, err
	}

	ord, err := s.orders.FindByIntentID(ctx, intentID, orderID)
	if err != nil {
		return nil, err
	}

	next := advanceStatus(ord.Status, intent.Status)
	patch := orderrepo.ReconciliationPatch{
		Status:          next,
		GatewayStatus:   intent.Status,
		GatewayChargeID: intent.LatestChargeID,
	}
	if next == domain.StatusSucceeded {
		// The store keeps the first paid_at, so a duplicate confirmation
		// cannot move the payment timestamp.
		paidAt := s.now().UTC()
		patch.PaidAt = &paidAt
	}

	updated, err := s.orders.ApplyReconciliation(ctx, ord.ID, patch)
	if err != nil {
		s.logger.Printf("reconcile order %s for intent %s failed: %v", ord.ID, intentID, err)
		return nil, err
	}

	return &ConfirmOutput{Order: updated, PaymentIntent: intent}, nil
}

// advanceStatus enforces the one-directional state machine: terminal
// states absorb, and an earlier-ranked status never replaces a later one.
func advanceStatus(current, incoming string) string {
	if incoming == "" {
		return current
	}
	if domain.IsTerminalStatus(current) {
		return current
	}
	if domain.StatusRank(incoming) < domain.StatusRank(current) {
		return current
	}
	return incoming
}
