package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/config"
	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/internal/kv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/add-to-cart/main.go <product-id> [quantity]")
		fmt.Println("Example: go run cmd/add-to-cart/main.go 6650f2a1 2")
		os.Exit(1)
	}

	productID := os.Args[1]
	quantity := 1
	if len(os.Args) > 2 {
		q, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Quantity must be an integer: %v\n", err)
			os.Exit(1)
		}
		quantity = q
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx := context.Background()

	store, err := kv.Open(ctx, cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open cart storage: %v\n", err)
		os.Exit(1)
	}

	client := backend.NewClient(cfg.Backend, logger)

	product, err := client.GetProduct(ctx, productID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch product: %v\n", err)
		os.Exit(1)
	}

	carts := cart.NewStore(store, logger)
	if err := carts.AddOrIncrement(ctx, *product, quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to add to cart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added %dx %s to cart\n", quantity, product.Name)
	fmt.Printf("Cart total: %s\n", domain.FormatAmount(carts.Total(ctx), cfg.Locale))
}
