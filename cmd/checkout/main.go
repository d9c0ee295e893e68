package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/medzone/storefront/internal/backend"
	"github.com/medzone/storefront/internal/cart"
	"github.com/medzone/storefront/internal/checkout"
	"github.com/medzone/storefront/internal/config"
	"github.com/medzone/storefront/internal/domain"
	"github.com/medzone/storefront/internal/kv"
)

func main() {
	if len(os.Args) < 8 {
		fmt.Println("Usage: go run cmd/checkout/main.go <first-name> <last-name> <address> <postal-code> <phone> <email> <payment> [card-number expiry cvv]")
		fmt.Println("Example: go run cmd/checkout/main.go Amal Perera \"12 Galle Road, Colombo\" 10350 0771234567 amal@example.com CASH_ON_DELIVERY")
		fmt.Println("Payment is CARD or CASH_ON_DELIVERY; CARD needs the three card arguments.")
		os.Exit(1)
	}

	form := domain.CheckoutForm{
		FirstName:     os.Args[1],
		LastName:      os.Args[2],
		Address:       os.Args[3],
		PostalCode:    os.Args[4],
		Phone:         os.Args[5],
		Email:         os.Args[6],
		PaymentMethod: domain.PaymentMethod(os.Args[7]),
	}

	var card domain.CardDetails
	if len(os.Args) > 10 {
		card = domain.CardDetails{
			CardNumber: os.Args[8],
			Expiry:     os.Args[9],
			CVV:        os.Args[10],
		}
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

	carts := cart.NewStore(store, logger)
	client := backend.NewClient(cfg.Backend, logger)

	total := carts.Total(ctx)
	fmt.Printf("Order total: %s\n", domain.FormatAmount(total, cfg.Locale))

	flow := checkout.NewFlow(carts, client, logger)

	if err := flow.SubmitForm(ctx, form); err != nil {
		fmt.Fprintf(os.Stderr, "Checkout failed: %v\n", err)
		os.Exit(1)
	}

	if flow.State() == domain.CheckoutStateCardCapture {
		if err := flow.SubmitCard(ctx, card); err != nil {
			fmt.Fprintf(os.Stderr, "Card payment failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Order placed successfully! Your cart has been cleared.")
}
