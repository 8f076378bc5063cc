package main

import (
	"context"
	"flag"
	"log"

	"github.com/ayhero/inpayos-checkout/internal/checkout/app"
)

func main() {
	var req app.FlowRequest
	flag.StringVar(&req.CheckoutID, "checkout-id", "", "resume an existing hosted session")
	flag.StringVar(&req.Amount, "amount", "", "order amount, decimal string")
	flag.StringVar(&req.ProductID, "product", "", "merchant product identifier")
	flag.StringVar(&req.ReturnURL, "return-url", "", "absolute URL the payer returns to")
	flag.StringVar(&req.NotifyURL, "notify-url", "", "absolute URL for the server notification")
	flag.StringVar(&req.Method, "method", "", "payment method code (default: first resolved option)")
	flag.StringVar(&req.ProofID, "proof-id", "", "proof reference (default: generated)")
	flag.Parse()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(context.Background(), req); err != nil {
		log.Fatalf("checkout flow failed: %v", err)
	}
}
