package checkoutsdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Create validates the form, registers the order with the backend, and moves
// the session to Created. Validation failures are reported before any network
// call; on backend or transport failure the session stays idle.
func (c *Controller) Create(ctx context.Context, form CreateForm) error {
	if err := validateCreateForm(form); err != nil {
		return err
	}

	c.mu.Lock()
	if c.session.State != StateIdle {
		c.mu.Unlock()
		return fmt.Errorf("create in state %s: %w", c.session.State, ErrInvalidState)
	}
	gen, err := c.beginOp("create")
	if err != nil {
		c.mu.Unlock()
		return err
	}

	req := CreateOrderRequest{
		RequestID: form.RequestID,
		Currency:  form.Currency,
		Amount:    form.Amount,
		ProductID: form.ProductID,
		ReturnURL: form.ReturnURL,
		NotifyURL: form.NotifyURL,
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}
	c.mu.Unlock()
	defer c.endOp("create")

	result, err := c.client.CreateOrder(ctx, req)
	if err != nil {
		return err
	}
	if result.CheckoutID == "" {
		return fmt.Errorf("create response carried no checkoutId: %w", ErrMalformedResponse)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return staleErr("create")
	}

	c.session.CheckoutID = result.CheckoutID
	c.session.RequestID = req.RequestID
	c.session.Amount = req.Amount
	c.session.Currency = req.Currency
	c.session.AuthToken = result.AuthToken
	c.session.State = StateCreated

	c.logger.Info("checkout session created",
		"checkout_id", result.CheckoutID,
		"request_id", req.RequestID,
		"amount", req.Amount,
		"currency", req.Currency,
	)
	return nil
}

func validateCreateForm(form CreateForm) error {
	if strings.TrimSpace(form.Amount) == "" {
		return &ValidationError{Field: "amount", Reason: "must not be blank"}
	}
	if _, err := strconv.ParseFloat(form.Amount, 64); err != nil {
		return &ValidationError{Field: "amount", Reason: "must be a numeric string"}
	}
	if strings.TrimSpace(form.ProductID) == "" {
		return &ValidationError{Field: "productId", Reason: "must not be blank"}
	}
	if err := validateAbsoluteURL("returnUrl", form.ReturnURL); err != nil {
		return err
	}
	if err := validateAbsoluteURL("notifyUrl", form.NotifyURL); err != nil {
		return err
	}
	return nil
}

func validateAbsoluteURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Field: field, Reason: "must not be blank"}
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ValidationError{Field: field, Reason: "must be an absolute URL"}
	}
	return nil
}
