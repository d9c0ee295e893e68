package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
)

// HandleListProducts renders the product grid from the remote catalog
func HandleListProducts(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := api.ListProducts(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct renders a single product detail page
func HandleGetProduct(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := api.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
