package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/category"
)

func listCategoriesHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "")
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func createCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in category.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		cat, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func updateCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in category.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		cat, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err, "Category not found.")
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

func reorderCategoriesHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		if err := svc.Reorder(c.Request.Context(), req.IDs); err != nil {
			respondError(c, err, "Category not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Categories reordered."})
	}
}

func deleteCategoryHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Category not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted."})
	}
}
