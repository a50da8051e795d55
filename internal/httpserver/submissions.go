package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/submission"
)

func createSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in submission.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		sub, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":      "Submission saved.",
			"submissionId": sub.ID,
			"data":         sub,
		})
	}
}

func listSubmissionsHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		if subs == nil {
			subs = []domain.Submission{}
		}
		c.JSON(http.StatusOK, subs)
	}
}

func getSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Submission not found.")
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

func approveSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.Approve(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Submission not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Submission approved", "data": sub})
	}
}

func rejectSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.Reject(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Submission not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Submission rejected", "data": sub})
	}
}

func updateSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in submission.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		sub, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err, "Submission not found.")
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

func deleteSubmissionHandler(svc SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Submission not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Submission deleted."})
	}
}
