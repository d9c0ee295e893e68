package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/config"
	"github.com/medzone/storefront/internal/domain"
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

	client := backend.NewClient(cfg.Backend, logger)

	products, err := client.ListProducts(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list products: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	fmt.Printf("Found %d products:\n\n", len(products))
	for _, p := range products {
		available := "in stock"
		if !p.Availability {
			available = "unavailable"
		}
		fmt.Printf("  %s  %s  %s  (%s)\n",
			p.ID, p.Name, domain.FormatAmount(p.Price, cfg.Locale), available)
	}
}
