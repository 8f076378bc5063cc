package checkoutsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestTimeout bounds each individual backend call. This is a
// transport ceiling, independent of the session-level expiry deadline.
const DefaultRequestTimeout = 30 * time.Second

// Client is a low-level client for the hosted checkout backend. It speaks the
// raw wire contract (create / info / services / submit / confirm) and injects
// the bearer token where a call requires one.
//
// Most callers should drive the flow through a Controller instead, which owns
// the session state machine on top of this client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter optionally throttles outbound calls. When nil no limiting is
	// applied. The hosted backend rate-limits aggressively on shared
	// infrastructure, so embedders driving many sessions should set one.
	Limiter *rate.Limiter
}

// NewClient creates a checkout backend client with the default per-request
// timeout and no outbound rate limiting.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}
