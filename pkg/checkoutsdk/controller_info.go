package checkoutsdk

import (
	"context"
	"fmt"
)

// LoadInfo retrieves order metadata and the session bearer token, starts the
// expiry countdown, fetches the services catalog with the fresh token, and
// resolves the payment method options. This is the only network operation
// allowed without a prior token.
//
// checkoutID may be empty when the session already holds one (hosted widgets
// usually receive the identifier out-of-band and call LoadInfo first, without
// a prior Create).
func (c *Controller) LoadInfo(ctx context.Context, checkoutID string) error {
	c.mu.Lock()
	if checkoutID == "" {
		checkoutID = c.session.CheckoutID
	}
	if checkoutID == "" {
		c.mu.Unlock()
		return &ValidationError{Field: "checkoutId", Reason: "must not be blank"}
	}
	if c.session.State > StateInfoLoaded {
		c.mu.Unlock()
		return fmt.Errorf("load info in state %s: %w", c.session.State, ErrInvalidState)
	}
	gen, err := c.beginOp("info")
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	defer c.endOp("info")

	info, err := c.client.FetchInfo(ctx, checkoutID)
	if err != nil {
		return err
	}
	if info.AuthToken == "" {
		return fmt.Errorf("info response carried no authToken: %w", ErrMalformedResponse)
	}

	catalog, err := c.client.FetchServices(ctx, info.AuthToken, checkoutID)
	if err != nil {
		return err
	}
	options := ResolveMethods(catalog, info.Country)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return staleErr("info")
	}

	s := &c.session
	// The response's own identifier is canonical; older deployments emit it
	// under "id" instead of "checkoutId".
	if id := info.Identifier(); id != "" {
		s.CheckoutID = id
	} else if s.CheckoutID == "" {
		s.CheckoutID = checkoutID
	}
	s.AuthToken = info.AuthToken
	if info.Amount != "" {
		s.Amount = info.Amount
	}
	if info.Currency != "" {
		s.Currency = info.Currency
	}
	if s.Country == "" {
		s.Country = info.Country
	}

	// The deadline is set at most once for the life of the session. When the
	// backend omits it, fall back to the token's exp claim; absent both, no
	// expiry tracking happens.
	if s.ExpiresAt.IsZero() {
		if deadline, ok := info.Deadline(); ok {
			s.ExpiresAt = deadline
		} else if deadline, ok := tokenDeadline(info.AuthToken); ok {
			s.ExpiresAt = deadline
		}
	}
	if !s.ExpiresAt.IsZero() {
		c.clock.Start(s.ExpiresAt)
	}

	s.Options = options
	s.State = StateInfoLoaded

	c.logger.Info("checkout info loaded",
		"checkout_id", s.CheckoutID,
		"country", s.Country,
		"options", len(options),
		"expires_at", s.ExpiresAt,
	)
	return nil
}
