package checkoutsdk

import "context"

// ConfirmPayment reports the client-asserted proof of an off-band transfer.
// Requires the session bearer token. The backend only signals success or
// failure; no data is returned.
func (c *Client) ConfirmPayment(
	ctx context.Context,
	token string,
	req ConfirmPaymentRequest,
) error {
	return c.postJSON(ctx, "confirm", "/v1/checkout/confirm", token, req, nil)
}
