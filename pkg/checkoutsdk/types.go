package checkoutsdk

import "time"

// ============================================================================
// Wire Types
// ============================================================================

// CreateOrderRequest is the body of the order-creation call. All fields except
// RequestID map one-to-one onto the merchant's checkout form.
type CreateOrderRequest struct {
	// RequestID is the idempotency key for this creation attempt.
	RequestID string `json:"requestId"`

	// Currency is the ISO 4217 settlement currency code.
	Currency string `json:"currency"`

	// Amount is the order amount as a decimal string (e.g. "100.00").
	Amount string `json:"amount"`

	// ProductID identifies the merchant product being paid for.
	ProductID string `json:"productId"`

	// ReturnURL is where the payer is sent after completing the flow.
	ReturnURL string `json:"returnUrl"`

	// NotifyURL receives the server-to-server payment notification.
	NotifyURL string `json:"notifyUrl"`
}

// CreateOrderResult is the envelope data of a successful creation call.
type CreateOrderResult struct {
	CheckoutID string `json:"checkoutId"`

	// AuthToken is optionally minted at creation time. Most deployments only
	// issue the token from the info call.
	AuthToken string `json:"authToken,omitempty"`
}

// OrderInfo is the envelope data of the info call: order metadata plus the
// session's bearer token.
type OrderInfo struct {
	CheckoutID string `json:"checkoutId"`

	// ID is an older alias for CheckoutID still emitted by some deployments.
	ID string `json:"id,omitempty"`

	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Country  string `json:"country,omitempty"`

	// ExpiresAt is the absolute session deadline in epoch milliseconds.
	// Zero means the backend set no deadline.
	ExpiresAt int64 `json:"expiresAt,omitempty"`

	// AuthToken is the bearer credential for every subsequent call.
	AuthToken string `json:"authToken"`
}

// Identifier returns the checkout identifier regardless of which field the
// deployment populated.
func (i *OrderInfo) Identifier() string {
	if i.CheckoutID != "" {
		return i.CheckoutID
	}
	return i.ID
}

// Deadline converts the raw expiry into a time.Time. ok is false when the
// backend supplied no deadline.
func (i *OrderInfo) Deadline() (deadline time.Time, ok bool) {
	if i.ExpiresAt == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(i.ExpiresAt), true
}

// CountryConfig describes the payment methods available in one country.
type CountryConfig struct {
	// MethodCodes is the ordered list of method codes offered.
	MethodCodes []string `json:"methodCodes"`

	// MethodConfig holds per-method constraint blobs (limits, cut-off times).
	// The SDK passes these through untouched.
	MethodConfig map[string]map[string]any `json:"perMethodConfig,omitempty"`
}

// ServicesCatalog is the envelope data of the services call: the countries
// the backend can settle in and each country's method configuration.
type ServicesCatalog struct {
	Countries []string                 `json:"countries"`
	Configs   map[string]CountryConfig `json:"configs"`
}

// Transaction is the backend's record of a submitted payment.
type Transaction struct {
	ID string `json:"id"`

	// Links maps a payment app name to its deep link (e.g. a UPI intent URL).
	Links map[string]string `json:"links,omitempty"`
}

// SubmitPaymentRequest is the body of the submit call.
type SubmitPaymentRequest struct {
	CheckoutID string `json:"checkoutId"`
	Method     string `json:"method"`
	Country    string `json:"country"`
}

// SubmitPaymentResult is the envelope data of a successful submit call.
type SubmitPaymentResult struct {
	Transaction Transaction `json:"transaction"`
}

// ConfirmPaymentRequest is the body of the confirm call: client-asserted
// evidence that the off-band transfer was completed.
type ConfirmPaymentRequest struct {
	CheckoutID    string   `json:"checkoutId"`
	TransactionID string   `json:"transactionId"`
	ProofID       string   `json:"proofId"`
	AppName       string   `json:"appName"`
	ProofURLs     []string `json:"proofUrls"`
}
