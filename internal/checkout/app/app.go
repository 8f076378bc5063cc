package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ayhero/inpayos-checkout/pkg/checkoutsdk"
	"github.com/ayhero/inpayos-checkout/pkg/slogx"
	"golang.org/x/time/rate"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// FlowRequest is one checkout attempt as described on the command line.
type FlowRequest struct {
	// CheckoutID resumes a hosted session created elsewhere. When set, the
	// creation step is skipped and the flow starts at the info step.
	CheckoutID string

	Amount    string
	ProductID string
	ReturnURL string
	NotifyURL string

	// Method picks the payment option up front. Empty means the first
	// resolved option.
	Method string

	// ProofID files a caller-supplied proof reference; empty generates one.
	ProofID string
}

// Application wires the SDK controller for a command-line checkout flow.
type Application struct {
	cfg    Config
	logger *slog.Logger

	controller *checkoutsdk.Controller
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("CHECKOUT_BASE_URL is required")
	}

	logger := slogx.New(slogx.Config{
		Service: "checkout-cli",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	client := checkoutsdk.NewClient(cfg.BaseURL)
	client.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	if cfg.RateLimit > 0 {
		client.Limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Application{
		cfg:        cfg,
		logger:     logger,
		controller: checkoutsdk.NewController(client, logger),
	}, nil
}

// Run walks one full checkout flow and prints the payment links and the
// confirmation record to stdout.
func (a *Application) Run(ctx context.Context, req FlowRequest) error {
	ctrl := a.controller
	ctx = slogx.WithContext(ctx, a.logger)

	ctrl.OnTick(func(remaining time.Duration) {
		a.logger.Debug("session countdown", "remaining", remaining.Round(time.Second))
	})

	if req.CheckoutID == "" {
		err := ctrl.Create(ctx, checkoutsdk.CreateForm{
			Amount:    req.Amount,
			ProductID: req.ProductID,
			ReturnURL: req.ReturnURL,
			NotifyURL: req.NotifyURL,
			Currency:  a.cfg.Currency,
		})
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
	}

	if err := ctrl.LoadInfo(ctx, req.CheckoutID); err != nil {
		return fmt.Errorf("load info: %w", err)
	}

	session := ctrl.Session()

	// Every log line from here on carries the session correlation key.
	ctx = slogx.WithCheckoutID(ctx, session.CheckoutID)
	logger := slogx.FromContext(ctx)

	fmt.Printf("checkout %s  %s %s  expires %s\n",
		session.CheckoutID, session.Amount, session.Currency,
		formatDeadline(session.ExpiresAt),
	)
	for _, opt := range session.Options {
		fmt.Printf("  [%s] %s - %s\n", opt.Code, opt.DisplayName, opt.Description)
	}

	method := req.Method
	if method == "" {
		method = session.Options[0].Code
	}
	if err := ctrl.SelectMethod(method); err != nil {
		return fmt.Errorf("select method: %w", err)
	}

	if err := ctrl.Submit(ctx); err != nil {
		if errors.Is(err, checkoutsdk.ErrSessionExpired) {
			logger.Warn("session expired before submission")
			ctrl.Reset()
			return fmt.Errorf("session expired before submission, start a new attempt: %w", err)
		}
		return fmt.Errorf("submit: %w", err)
	}

	printPayload(ctrl.Session().Payload)

	conf, err := ctrl.Confirm(ctx, checkoutsdk.ConfirmProof{ProofID: req.ProofID})
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}

	fmt.Printf("confirmed transaction %s (proof %s via %s)\n",
		conf.TransactionID, conf.ProofID, conf.AppName)
	if conf.SynthesizedTransactionID {
		fmt.Println("note: transaction id was generated client-side, check the submit response")
	}
	logger.Info("checkout flow complete", "transaction_id", conf.TransactionID)
	return nil
}

func printPayload(payload checkoutsdk.PaymentPayload) {
	switch p := payload.(type) {
	case checkoutsdk.UPIPayload:
		if p.IntentURL != "" {
			fmt.Printf("pay via UPI intent: %s\n", p.IntentURL)
		}
		for app, link := range p.AppLinks {
			fmt.Printf("  %s: %s\n", app, link)
		}
	case checkoutsdk.BankTransferPayload:
		fmt.Printf("bank transfer instructions: %s\n", p.InstructionsURL)
	case checkoutsdk.OtherPayload:
		for app, link := range p.Links {
			fmt.Printf("  %s: %s\n", app, link)
		}
	}
}

func formatDeadline(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.RFC3339)
}
