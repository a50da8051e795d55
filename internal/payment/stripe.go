package payment

import (
	"context"
	"errors"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway implements Gateway against the Stripe API. One instance is
// created at startup and shared across requests.
type StripeGateway struct {
	api *client.API
}

// NewStripe builds a gateway client with a timeout-bounded HTTP backend.
func NewStripe(apiKey string, timeout time.Duration) *StripeGateway {
	backends := stripe.NewBackends(&http.Client{Timeout: timeout})
	api := &client.API{}
	api.Init(apiKey, backends)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, in CreateIntentInput) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(in.AmountMinorUnits),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	if in.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(in.ReceiptEmail)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, classify(err, "Unable to create payment intent.")
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, classify(err, "Unable to confirm payment.")
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	out := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		ReceiptEmail: pi.ReceiptEmail,
	}
	if pi.LatestCharge != nil {
		out.LatestChargeID = pi.LatestCharge.ID
	}
	return out
}

// classify translates a Stripe SDK failure into a client-safe *Error.
// Invalid-request failures are the caller's fault (400); anything else,
// timeouts included, surfaces as a retryable 502.
func classify(err error, safeMessage string) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Type == stripe.ErrorTypeInvalidRequest {
		return &Error{Status: http.StatusBadRequest, Message: safeMessage, cause: err}
	}
	return &Error{Status: http.StatusBadGateway, Message: safeMessage, cause: err}
}
