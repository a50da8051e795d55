package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/payment"
	"github.com/khatkhazana-hub/backend/internal/pricing"
	"github.com/khatkhazana-hub/backend/internal/service/checkout"
)

type stubCheckout struct {
	createOut *checkout.CreateIntentOutput
	createErr error
	confirmOut *checkout.ConfirmOutput
	confirmErr error

	lastLines    []pricing.CartLine
	lastCustomer domain.CustomerInfo
	lastIntentID string
	lastOrderID  string
}

func (s *stubCheckout) CreateIntent(_ context.Context, lines []pricing.CartLine, customer domain.CustomerInfo) (*checkout.CreateIntentOutput, error) {
	s.lastLines = lines
	s.lastCustomer = customer
	return s.createOut, s.createErr
}

func (s *stubCheckout) Confirm(_ context.Context, intentID, orderID string) (*checkout.ConfirmOutput, error) {
	s.lastIntentID = intentID
	s.lastOrderID = orderID
	return s.confirmOut, s.confirmErr
}

func checkoutRouter(svc CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/checkout/create-payment-intent", createPaymentIntentHandler(svc))
	router.POST("/api/checkout/confirm", confirmPaymentHandler(svc))
	return router
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	svc := &stubCheckout{
		createOut: &checkout.CreateIntentOutput{
			ClientSecret:    "pi_123_secret",
			PaymentIntentID: "pi_123",
			OrderID:         "ord_1",
			Amount:          decimal.RequireFromString("77.66"),
			Currency:        "usd",
		},
	}
	router := checkoutRouter(svc)

	body := `{"items":[{"id":"letter-kit","quantity":2},{"id":"wax-stamp","quantity":1}],"customer":{"name":"Amira","email":"amira@example.com","note":"gift wrap"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.lastLines) != 2 || svc.lastLines[0].ProductID != "letter-kit" || svc.lastLines[0].Quantity != 2 {
		t.Fatalf("cart lines not forwarded: %+v", svc.lastLines)
	}
	if svc.lastCustomer.Name != "Amira" || svc.lastCustomer.Note != "gift wrap" {
		t.Fatalf("customer not forwarded: %+v", svc.lastCustomer)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["paymentIntentId"]) != `"pi_123"` {
		t.Fatalf("paymentIntentId = %s", resp["paymentIntentId"])
	}
	// Amounts are JSON numbers, not strings.
	if string(resp["amount"]) != "77.66" {
		t.Fatalf("amount = %s", resp["amount"])
	}
}

func TestCreatePaymentIntent_InvalidCart(t *testing.T) {
	_, cartErr := pricing.Normalize(nil, pricing.DefaultPolicy(), nil)
	router := checkoutRouter(&stubCheckout{createErr: cartErr})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/create-payment-intent", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Cart items are required.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreatePaymentIntent_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{"gateway not configured", domain.ErrGatewayNotConfigured, http.StatusInternalServerError, "not configured"},
		{"gateway bad request", &payment.Error{Status: http.StatusBadRequest, Message: "Unable to create payment intent."}, http.StatusBadRequest, "Unable to create"},
		{"gateway unavailable", &payment.Error{Status: http.StatusBadGateway, Message: "Unable to create payment intent."}, http.StatusBadGateway, "Unable to create"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := checkoutRouter(&stubCheckout{createErr: tc.err})
			req := httptest.NewRequest(http.MethodPost, "/api/checkout/create-payment-intent", strings.NewReader(`{"items":[{"id":"x","quantity":1}]}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantInBody) {
				t.Fatalf("body %q missing %q", rec.Body.String(), tc.wantInBody)
			}
		})
	}
}

func TestConfirm_MissingIntentID(t *testing.T) {
	router := checkoutRouter(&stubCheckout{confirmErr: checkout.ErrMissingIntentID})
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestConfirm_OrderNotFound(t *testing.T) {
	router := checkoutRouter(&stubCheckout{confirmErr: domain.ErrNotFound})
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(`{"paymentIntentId":"pi_404"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Order not found for this payment intent.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestConfirm_Success(t *testing.T) {
	svc := &stubCheckout{
		confirmOut: &checkout.ConfirmOutput{
			Order:         &domain.Order{ID: "ord_1", Status: domain.StatusSucceeded},
			PaymentIntent: &payment.Intent{ID: "pi_123", Status: domain.StatusSucceeded},
		},
	}
	router := checkoutRouter(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", strings.NewReader(`{"paymentIntentId":"pi_123","orderId":"ord_1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastIntentID != "pi_123" || svc.lastOrderID != "ord_1" {
		t.Fatalf("confirm args = %q %q", svc.lastIntentID, svc.lastOrderID)
	}
}
