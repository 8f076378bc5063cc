package checkoutsdk

import (
	"encoding/json"
	"fmt"
)

// The backend wraps every response body in a common envelope. Code "0000"
// signals success; anything else is a failure and data must be ignored.
const envelopeOK = "0000"

// Known backend failure codes. Anything unlisted surfaces as a BackendError.
const (
	codeSessionNotFound = "4004"
	codeSessionExpired  = "4102"
	codeMethodRejected  = "4210"
)

// envelope is the normalised {code, msg, data} response wrapper.
type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// ok reports whether the envelope signals success.
func (e *envelope) ok() bool {
	return e.Code == envelopeOK
}

// asError maps a failure envelope to a typed error. Known codes map to
// sentinels so callers can errors.Is them; everything else keeps the raw
// code and message.
func (e *envelope) asError() error {
	switch e.Code {
	case codeSessionNotFound:
		return fmt.Errorf("%w: %s", ErrSessionNotFound, e.Msg)
	case codeSessionExpired:
		return fmt.Errorf("%w: %s", ErrSessionExpired, e.Msg)
	case codeMethodRejected:
		return fmt.Errorf("%w: %s", ErrMethodRejected, e.Msg)
	default:
		return &BackendError{Code: e.Code, Msg: e.Msg}
	}
}
