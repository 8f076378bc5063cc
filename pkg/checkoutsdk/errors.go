package checkoutsdk

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Sentinel errors for the checkout protocol. Callers should match these with
// errors.Is; the wrapped message carries the operation and backend detail.
var (
	// ErrSessionNotFound is returned when the backend does not recognise the
	// checkout identifier.
	ErrSessionNotFound = errors.New("session_not_found")

	// ErrSessionExpired is returned when the session deadline has passed,
	// whether the backend reported it or the local expiry clock fired first.
	ErrSessionExpired = errors.New("session_expired")

	// ErrInvalidSelection is returned when a method code is not a member of
	// the last resolved option set.
	ErrInvalidSelection = errors.New("invalid_selection")

	// ErrMethodRejected is returned when the backend refuses the chosen
	// method/country pairing at submit time. Retrying the same method is
	// pointless; the caller should reselect.
	ErrMethodRejected = errors.New("method_rejected")

	// ErrNetworkTimeout is returned when a single call exceeds its transport
	// ceiling. Distinct from ErrSessionExpired: the session may still be live.
	ErrNetworkTimeout = errors.New("network_timeout")

	// ErrSessionBusy is returned when the same network operation is already
	// outstanding. Only the first caller's result is honoured.
	ErrSessionBusy = errors.New("operation_in_flight")

	// ErrInvalidState is returned when an operation is attempted outside the
	// state it is allowed in (e.g. Submit before SelectMethod).
	ErrInvalidState = errors.New("invalid_state")

	// ErrMalformedResponse is returned when a successful envelope is missing a
	// field the protocol requires (e.g. a create response without a
	// checkoutId). Never carries the envelope's success code.
	ErrMalformedResponse = errors.New("malformed_response")
)

// ValidationError reports bad or missing input, caught before any network
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// BackendError carries the raw envelope code and message for any backend
// failure that does not map onto a sentinel above.
type BackendError struct {
	Code string
	Msg  string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %s: %s", e.Code, e.Msg)
}

// wrapTransportErr normalises transport-level failures. Timeouts (context
// deadline or net-level) become ErrNetworkTimeout so callers never confuse a
// slow backend with an expired session.
func wrapTransportErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrNetworkTimeout)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%s: %w", op, ErrNetworkTimeout)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w", op, ErrNetworkTimeout)
	}

	return fmt.Errorf("%s: %w", op, err)
}
