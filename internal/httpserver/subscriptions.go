package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/subscription"
)

type subscribeRequest struct {
	Email        string `json:"email"`
	CaptchaToken string `json:"captchaToken"`
}

func createSubscriptionHandler(svc SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		out, err := svc.Create(c.Request.Context(), subscription.CreateInput{
			Email:        req.Email,
			CaptchaToken: req.CaptchaToken,
			RemoteIP:     c.ClientIP(),
		})
		if err != nil {
			respondError(c, err, "")
			return
		}
		if !out.Created {
			c.JSON(http.StatusOK, gin.H{"message": "You are already subscribed.", "subscription": out.Subscription})
			return
		}
		c.JSON(http.StatusCreated, out.Subscription)
	}
}

func listSubscriptionsHandler(svc SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		if subs == nil {
			subs = []domain.Subscription{}
		}
		c.JSON(http.StatusOK, subs)
	}
}

func deleteSubscriptionHandler(svc SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Subscription not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted."})
	}
}
