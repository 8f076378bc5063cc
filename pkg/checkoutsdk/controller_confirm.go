package checkoutsdk

import (
	"context"
	"fmt"

	"github.com/ayhero/inpayos-checkout/pkg/idx"
)

// Confirm reports proof of the off-band transfer and finalises the session.
// On success the session moves to Confirmed and the expiry clock stops; on
// failure it stays at Submitted and the call may be retried.
//
// Identifiers the backend never supplied are generated client-side so the
// confirmation can still be filed, but the fallback is observable: the
// returned Confirmation flags every synthesized field and a warning is
// logged. A missing transaction identifier at this point usually means the
// submit response was incomplete, which is worth investigating backend-side.
func (c *Controller) Confirm(ctx context.Context, proof ConfirmProof) (*Confirmation, error) {
	c.mu.Lock()
	if c.session.State != StateSubmitted {
		c.mu.Unlock()
		return nil, fmt.Errorf("confirm in state %s: %w", c.session.State, ErrInvalidState)
	}
	gen, err := c.beginOp("confirm")
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	conf := Confirmation{
		ProofID:   proof.ProofID,
		AppName:   appNameFor(c.session.SelectedMethod),
		ProofURLs: proof.ProofURLs,
	}
	if conf.ProofURLs == nil {
		conf.ProofURLs = []string{}
	}
	if c.session.Transaction != nil {
		conf.TransactionID = c.session.Transaction.ID
	}
	if conf.TransactionID == "" {
		conf.TransactionID = idx.NewTransactionRef()
		conf.SynthesizedTransactionID = true
		// Persist so a retry files the same identifier.
		if c.session.Transaction == nil {
			c.session.Transaction = &Transaction{}
		}
		c.session.Transaction.ID = conf.TransactionID
	}
	if conf.ProofID == "" || conf.ProofID == "auto" {
		conf.ProofID = idx.NewProofRef()
		conf.SynthesizedProofID = true
	}

	token := c.session.AuthToken
	req := ConfirmPaymentRequest{
		CheckoutID:    c.session.CheckoutID,
		TransactionID: conf.TransactionID,
		ProofID:       conf.ProofID,
		AppName:       conf.AppName,
		ProofURLs:     conf.ProofURLs,
	}
	c.mu.Unlock()
	defer c.endOp("confirm")

	if conf.SynthesizedTransactionID {
		c.logger.Warn("backend supplied no transaction id, filing synthesized identifier",
			"checkout_id", req.CheckoutID,
			"transaction_id", conf.TransactionID,
		)
	}

	if err := c.client.ConfirmPayment(ctx, token, req); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, staleErr("confirm")
	}

	c.session.State = StateConfirmed
	c.clock.Stop()

	c.logger.Info("payment confirmed",
		"checkout_id", req.CheckoutID,
		"transaction_id", conf.TransactionID,
		"proof_id", conf.ProofID,
		"app", conf.AppName,
	)
	return &conf, nil
}
