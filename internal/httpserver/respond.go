package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/payment"
	"github.com/khatkhazana-hub/backend/internal/pricing"
	"github.com/khatkhazana-hub/backend/internal/service/checkout"
	"github.com/khatkhazana-hub/backend/internal/service/subscription"
)

// respondError maps service errors onto HTTP statuses. notFoundMsg lets a
// handler phrase its own 404; everything else carries either the error's
// client-safe message or a generic one.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var invalidCart *pricing.InvalidCartError
	var validation *domain.ValidationError
	var payErr *payment.Error

	switch {
	case errors.As(err, &invalidCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidCart.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Msg})
	case errors.Is(err, checkout.ErrMissingIntentID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "paymentIntentId is required."})
	case errors.As(err, &payErr):
		c.JSON(payErr.Status, gin.H{"message": payErr.Message})
	case errors.Is(err, domain.ErrGatewayNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway is not configured on the server."})
	case errors.Is(err, subscription.ErrCaptchaUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Captcha verification is unavailable. Please try again."})
	case errors.Is(err, domain.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Not found."
		}
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": "Already exists."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	}
}
