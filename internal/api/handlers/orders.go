package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
)

// HandleMyOrders lists the visitor's past orders from the pharmacy API
func HandleMyOrders(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := api.MyOrders(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// HandleCancelOrder lets the visitor cancel one of their own pending orders
func HandleCancelOrder(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
