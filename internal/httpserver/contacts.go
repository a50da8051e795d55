package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/service/contact"
)

func createContactHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contact.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listContactsHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		out, err := svc.List(c.Request.Context(), contact.ListInput{
			Search: c.Query("search"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func getContactHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Contact not found.")
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

func deleteContactHandler(svc ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Contact not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted."})
	}
}
