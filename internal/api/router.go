package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/api/handlers"
	"github.com/medzone/storefront/internal/api/middleware"
	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, carts *cart.Store, api *backend.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.BearerPassthrough())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	session := handlers.NewCheckoutSession(carts, api, logger)
	locale := cfg.Locale

	v1 := router.Group("/v1")
	{
		// Catalog (proxied, read-only)
		v1.GET("/products", handlers.HandleListProducts(api, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(api, logger))

		// Cart (client-local state)
		v1.GET("/cart", handlers.HandleCartView(carts, locale, logger))
		v1.POST("/cart/items", handlers.HandleCartAdd(carts, api, locale, logger))
		v1.PUT("/cart/items/:index", handlers.HandleCartSetQuantity(carts, locale, logger))
		v1.DELETE("/cart/items/:index", handlers.HandleCartRemove(carts, locale, logger))
		v1.DELETE("/cart", handlers.HandleCartClear(carts, logger))

		// Checkout flow
		v1.GET("/checkout", handlers.HandleCheckoutState(session, locale))
		v1.POST("/checkout", handlers.HandleCheckoutSubmit(session, locale, logger))
		v1.POST("/checkout/card", handlers.HandleCheckoutCard(session, locale, logger))

		// Orders and reviews (proxied)
		v1.GET("/orders", handlers.HandleMyOrders(api, logger))
		v1.DELETE("/orders/:id", handlers.HandleCancelOrder(api, logger))
		v1.GET("/reviews", handlers.HandleListReviews(api, logger))
		v1.POST("/reviews", handlers.HandleAddReview(api, logger))
		v1.GET("/reviews/mine", handlers.HandleMyReviews(api, logger))
		v1.GET("/reviews/mine/:id", handlers.HandleMyReview(api, logger))
		v1.PUT("/reviews/mine/:id", handlers.HandleUpdateMyReview(api, logger))
		v1.DELETE("/reviews/mine/:id", handlers.HandleDeleteMyReview(api, logger))

		// Shop-owner surface (proxied; the pharmacy API checks the token)
		adminRoutes := v1.Group("/admin")
		{
			adminRoutes.POST("/products", handlers.HandleAdminAddProduct(api, logger))
			adminRoutes.PUT("/products/:id", handlers.HandleAdminUpdateProduct(api, logger))
			adminRoutes.DELETE("/products/:id", handlers.HandleAdminDeleteProduct(api, logger))
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(api, logger))
			adminRoutes.POST("/orders/:id/approve", handlers.HandleAdminApproveOrder(api, logger))
			adminRoutes.DELETE("/orders/:id", handlers.HandleAdminDeleteOrder(api, logger))
			adminRoutes.GET("/reviews", handlers.HandleAdminListReviews(api, logger))
			adminRoutes.POST("/reviews/:id/approve", handlers.HandleAdminApproveReview(api, logger))
			adminRoutes.DELETE("/reviews/:id", handlers.HandleAdminDeleteReview(api, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
