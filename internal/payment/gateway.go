// Package payment defines the outbound payment gateway contract and its
// Stripe implementation. The rest of the backend only sees Gateway and
// Intent; gateway SDK types never leak past this package.
package payment

import "context"

// Intent mirrors the gateway's view of an in-progress charge. The
// gateway-reported Status is authoritative; callers never trust a status
// supplied by a client.
type Intent struct {
	ID             string `json:"id"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	Status         string `json:"status"`
	LatestChargeID string `json:"latestChargeId,omitempty"`
	ReceiptEmail   string `json:"receiptEmail,omitempty"`
}

// CreateIntentInput sizes a new charge intent. Metadata should carry
// enough detail to reconstruct the order from the gateway side alone.
type CreateIntentInput struct {
	AmountMinorUnits int64
	Currency         string
	Description      string
	ReceiptEmail     string
	Metadata         map[string]string
}

// Gateway is the outbound payment collaborator. Both calls are bounded by
// the client's configured timeout and return *Error on failure.
type Gateway interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}

// Error is a classified gateway failure. Status is the HTTP status the
// API should answer with: 400 when the gateway rejected our request shape,
// 502 for transient unavailability. Message is client-safe; the raw
// gateway error is only reachable via Unwrap for logging.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }
