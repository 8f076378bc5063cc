package checkoutsdk

import "context"

// CreateOrder registers a new hosted-checkout order with the backend. This is
// an unauthenticated call; the returned checkout identifier is the correlation
// key for every later call in the session.
func (c *Client) CreateOrder(
	ctx context.Context,
	req CreateOrderRequest,
) (*CreateOrderResult, error) {
	var out CreateOrderResult
	if err := c.postJSON(ctx, "create", "/v1/checkout/create", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
