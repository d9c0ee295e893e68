package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/domain"
)

// CartAddRequest adds a product to the cart by catalog ID
type CartAddRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest replaces the quantity of one cart line
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartResponse is the cart view: the lines plus the numeric total and the
// locale-formatted total the visitor sees
type CartResponse struct {
	Items        []domain.CartLine `json:"items"`
	Total        float64           `json:"total"`
	DisplayTotal string            `json:"display_total"`
}

func cartResponse(c *gin.Context, carts *cart.Store, locale string) CartResponse {
	lines := carts.Load(c.Request.Context())
	total := cart.TotalOf(lines)
	return CartResponse{
		Items:        lines,
		Total:        total,
		DisplayTotal: domain.FormatAmount(total, locale),
	}
}

// HandleCartView returns the current cart
func HandleCartView(carts *cart.Store, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(c, carts, locale))
	}
}

// HandleCartAdd fetches the product from the catalog and merges it into the
// cart, the catalog being the source of the cart line's fields
func HandleCartAdd(carts *cart.Store, api *backend.Client, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := api.GetProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		if err := carts.AddOrIncrement(c.Request.Context(), *product, req.Quantity); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(c, carts, locale))
	}
}

// HandleCartSetQuantity replaces the quantity of the line at :index
func HandleCartSetQuantity(carts *cart.Store, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
			return
		}

		var req CartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := carts.SetQuantity(c.Request.Context(), index, req.Quantity); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(c, carts, locale))
	}
}

// HandleCartRemove deletes the line at :index
func HandleCartRemove(carts *cart.Store, locale string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
			return
		}

		if err := carts.Remove(c.Request.Context(), index); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(c, carts, locale))
	}
}

// HandleCartClear empties the cart
func HandleCartClear(carts *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context()); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
