package checkoutsdk

import (
	"context"
	"fmt"
)

// Submit sends the selected payment method to the backend and moves the
// session to Submitted, storing the transaction record and its resolved
// payload. Refused on an expired session; a method the backend rejects for
// the session's country surfaces as ErrMethodRejected and is not retriable
// with the same selection.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.session.State != StateMethodSelected {
		c.mu.Unlock()
		return fmt.Errorf("submit in state %s: %w", c.session.State, ErrInvalidState)
	}
	if c.session.AuthToken == "" {
		c.mu.Unlock()
		return fmt.Errorf("submit without auth token: %w", ErrInvalidState)
	}
	if c.frozen || c.clock.Expired() {
		c.mu.Unlock()
		return fmt.Errorf("submit: %w", ErrSessionExpired)
	}
	gen, err := c.beginOp("submit")
	if err != nil {
		c.mu.Unlock()
		return err
	}

	token := c.session.AuthToken
	req := SubmitPaymentRequest{
		CheckoutID: c.session.CheckoutID,
		Method:     c.session.SelectedMethod,
		Country:    c.session.Country,
	}
	c.mu.Unlock()
	defer c.endOp("submit")

	result, err := c.client.SubmitPayment(ctx, token, req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return staleErr("submit")
	}

	tx := result.Transaction
	c.session.Transaction = &tx
	c.session.Payload = resolvePayload(req.Method, tx)
	c.session.State = StateSubmitted

	c.logger.Info("payment submitted",
		"checkout_id", req.CheckoutID,
		"method", req.Method,
		"transaction_id", tx.ID,
	)
	return nil
}
