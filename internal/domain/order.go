package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The storefront client expects monetary fields as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Payment intent statuses as reported by the gateway. Orders mirror these
// values; the gateway is authoritative about what each one means.
const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusRequiresAction        = "requires_action"
	StatusProcessing            = "processing"
	StatusRequiresCapture       = "requires_capture"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// StatusRank orders payment statuses along the progression toward a
// terminal state. Unknown statuses rank lowest so they never displace a
// recorded one.
func StatusRank(status string) int {
	switch status {
	case StatusRequiresPaymentMethod:
		return 1
	case StatusRequiresConfirmation:
		return 2
	case StatusRequiresAction:
		return 3
	case StatusProcessing:
		return 4
	case StatusRequiresCapture:
		return 5
	case StatusSucceeded, StatusCanceled:
		return 6
	default:
		return 0
	}
}

// IsTerminalStatus reports whether no further transition is expected.
func IsTerminalStatus(status string) bool {
	return status == StatusSucceeded || status == StatusCanceled
}

// OrderItem is a catalog-priced cart line frozen into an order.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CustomerInfo is the free-form customer block attached to an order.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Note  string `json:"note,omitempty"`
}

// Order is created once the gateway intent is open and mutated only by
// reconciliation afterwards. GatewayIntentID is unique and is the key used
// to locate the order when a confirmation arrives.
type Order struct {
	ID              string          `json:"id"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	Customer        CustomerInfo    `json:"customer"`
	GatewayIntentID string          `json:"gatewayIntentId"`
	GatewayStatus   string          `json:"gatewayStatus,omitempty"`
	GatewayChargeID string          `json:"gatewayChargeId,omitempty"`
	ReceiptEmail    string          `json:"receiptEmail,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
