package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/domain"
)

// ProductRequest carries a catalog entry for the shop owner to create or
// replace. Authorization is the pharmacy API's call: the storefront only
// forwards the bearer token it was given.
type ProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
	Availability bool     `json:"availability"`
	Stock        int      `json:"stock" binding:"min=0"`
}

func (r ProductRequest) toProduct() domain.Product {
	return domain.Product{
		Name:         r.Name,
		Price:        r.Price,
		Images:       r.Images,
		Category:     r.Category,
		Availability: r.Availability,
		Stock:        r.Stock,
	}
}

// HandleAdminAddProduct handles POST /v1/admin/products
func HandleAdminAddProduct(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := api.AddProduct(c.Request.Context(), req.toProduct()); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

// HandleAdminUpdateProduct handles PUT /v1/admin/products/:id
func HandleAdminUpdateProduct(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := api.UpdateProduct(c.Request.Context(), c.Param("id"), req.toProduct()); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// HandleAdminDeleteProduct handles DELETE /v1/admin/products/:id
func HandleAdminDeleteProduct(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleAdminListOrders handles GET /v1/admin/orders
func HandleAdminListOrders(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := api.AllOrders(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// HandleAdminApproveOrder handles POST /v1/admin/orders/:id/approve
func HandleAdminApproveOrder(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.ApproveOrder(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	}
}

// HandleAdminDeleteOrder handles DELETE /v1/admin/orders/:id
func HandleAdminDeleteOrder(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleAdminListReviews handles GET /v1/admin/reviews, pending ones included
func HandleAdminListReviews(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := api.AllReviews(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// HandleAdminApproveReview handles POST /v1/admin/reviews/:id/approve
func HandleAdminApproveReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.ApproveReview(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	}
}

// HandleAdminDeleteReview handles DELETE /v1/admin/reviews/:id
func HandleAdminDeleteReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.DeleteReviewByAdmin(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
