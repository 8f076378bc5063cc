package checkoutsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// postJSON performs a JSON POST against the backend and decodes the envelope.
// When token is non-empty an Authorization header is set; the create and info
// calls are the only ones made without one. The envelope's data field is
// unmarshalled into out when out is non-nil.
func (c *Client) postJSON(
	ctx context.Context,
	op, path, token string,
	body any,
	out any,
) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return wrapTransportErr(op, err)
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url(path),
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return wrapTransportErr(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response body: %w", op, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf(
			"%s: unexpected response (status %d): %w",
			op, resp.StatusCode, err,
		)
	}

	if !env.ok() {
		return fmt.Errorf("%s: %w", op, env.asError())
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s: failed to decode response data: %w", op, err)
		}
	}

	return nil
}
