package checkoutsdk

import "context"

// FetchServices retrieves the services catalog: the countries the backend can
// settle in and the payment methods configured for each. Requires the bearer
// token minted by FetchInfo.
func (c *Client) FetchServices(
	ctx context.Context,
	token, checkoutID string,
) (*ServicesCatalog, error) {
	req := struct {
		CheckoutID string `json:"checkoutId"`
	}{CheckoutID: checkoutID}

	var out ServicesCatalog
	if err := c.postJSON(ctx, "services", "/v1/checkout/services", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
