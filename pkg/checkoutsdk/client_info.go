package checkoutsdk

import "context"

// FetchInfo retrieves order metadata and mints the session's bearer token.
// This is the only call allowed after creation without a token; re-fetching
// reissues the token.
func (c *Client) FetchInfo(
	ctx context.Context,
	checkoutID string,
) (*OrderInfo, error) {
	req := struct {
		CheckoutID string `json:"checkoutId"`
	}{CheckoutID: checkoutID}

	var out OrderInfo
	if err := c.postJSON(ctx, "info", "/v1/checkout/info", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
