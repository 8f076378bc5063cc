package checkoutsdk

import "context"

// SubmitPayment submits the chosen payment method for the order. Requires the
// session bearer token. The backend answers with the transaction record and
// any app deep links for completing the transfer.
func (c *Client) SubmitPayment(
	ctx context.Context,
	token string,
	req SubmitPaymentRequest,
) (*SubmitPaymentResult, error) {
	var out SubmitPaymentResult
	if err := c.postJSON(ctx, "submit", "/v1/checkout/submit", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
