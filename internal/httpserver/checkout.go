package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/pricing"
)

type createIntentRequest struct {
	Items    []pricing.CartLine  `json:"items"`
	Customer domain.CustomerInfo `json:"customer"`
}

func createPaymentIntentHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}

		out, err := svc.CreateIntent(c.Request.Context(), req.Items, req.Customer)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

type confirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
}

func confirmPaymentHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}

		out, err := svc.Confirm(c.Request.Context(), req.PaymentIntentID, req.OrderID)
		if err != nil {
			respondError(c, err, "Order not found for this payment intent.")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
