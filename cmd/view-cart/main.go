package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/config"
	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/internal/kv"
)

func main() {
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

	carts := cart.NewStore(store, logger)
	lines := carts.Load(ctx)

	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	fmt.Printf("Your cart (%d lines):\n\n", len(lines))
	for i, line := range lines {
		fmt.Printf("  [%d] %dx %s @ %s = %s\n",
			i,
			line.Quantity,
			line.Name,
			domain.FormatAmount(line.UnitPrice, cfg.Locale),
			domain.FormatAmount(line.Subtotal(), cfg.Locale),
		)
	}
	fmt.Printf("\nTotal: %s\n", domain.FormatAmount(cart.TotalOf(lines), cfg.Locale))
}
