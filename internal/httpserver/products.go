package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/product"
)

func listProductsHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The storefront sends active=true by default; anything else
		// (admin views) lists inactive products too.
		in := product.ListInput{
			Category:   c.Query("category"),
			ActiveOnly: c.DefaultQuery("active", "true") == "true",
		}
		products, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "")
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("key"))
		if err != nil {
			respondError(c, err, "Product not found.")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("key"), in)
		if err != nil {
			respondError(c, err, "Product not found.")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("key")); err != nil {
			respondError(c, err, "Product not found.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted."})
	}
}
