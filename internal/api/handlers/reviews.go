package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/domain"
)

// HandleListReviews lists approved reviews
func HandleListReviews(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := api.ApprovedReviews(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// ReviewRequest submits a review for moderation
type ReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

// HandleAddReview forwards a new review to the pharmacy API
func HandleAddReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		review := domain.Review{
			ProductID: req.ProductID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}

		if err := api.AddReview(c.Request.Context(), review); err != nil {
			respondError(c, logger, err)
			return
		}

		c.Status(http.StatusCreated)
	}
}

// HandleMyReviews lists the visitor's own reviews, approved or not
func HandleMyReviews(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := api.OwnReviews(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// HandleMyReview fetches a single review the visitor wrote
func HandleMyReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := api.OwnReview(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// HandleUpdateMyReview edits one of the visitor's reviews. The pharmacy API
// sends the edited review back through moderation.
func HandleUpdateMyReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		review := domain.Review{
			ProductID: req.ProductID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}

		if err := api.UpdateOwnReview(c.Request.Context(), c.Param("id"), review); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// HandleDeleteMyReview removes one of the visitor's reviews
func HandleDeleteMyReview(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.DeleteOwnReview(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
