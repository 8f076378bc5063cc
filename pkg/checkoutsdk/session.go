package checkoutsdk

import "time"

// State is the position of a checkout session in its lifecycle. States only
// advance, except for the explicit one-step Back regression.
type State int

const (
	// StateIdle is the pre-creation state. Reset always returns here.
	StateIdle State = iota

	// StateCreated means the backend has issued a checkout identifier.
	StateCreated

	// StateInfoLoaded means order metadata and the bearer token are held and
	// the payment method options have been resolved.
	StateInfoLoaded

	// StateMethodSelected means exactly one payment method is chosen.
	StateMethodSelected

	// StateSubmitted means the backend holds a transaction for the chosen
	// method and is waiting on proof of transfer.
	StateSubmitted

	// StateConfirmed is terminal: proof was accepted.
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCreated:
		return "Created"
	case StateInfoLoaded:
		return "InfoLoaded"
	case StateMethodSelected:
		return "MethodSelected"
	case StateSubmitted:
		return "Submitted"
	case StateConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// CheckoutSession is one end-to-end attempt to pay a single order. It is
// entirely client-local; the backend is only ever addressed by CheckoutID.
type CheckoutSession struct {
	// CheckoutID is the server-issued correlation key, assigned exactly once.
	CheckoutID string

	// RequestID is the client-generated idempotency key for the creating call.
	RequestID string

	// AuthToken is the bearer credential minted by the info step. Empty
	// before InfoLoaded, non-empty ever after.
	AuthToken string

	Amount   string
	Currency string

	// Country drives method resolution. When empty the resolver falls back
	// to the first country in the services catalog.
	Country string

	// ExpiresAt is the absolute session deadline. Set at most once; zero
	// means no expiry tracking.
	ExpiresAt time.Time

	State State

	// SelectedMethod is the active payment method code, set at
	// MethodSelected.
	SelectedMethod string

	// Options is the last resolved payment method set. SelectMethod only
	// accepts members of this list.
	Options []PaymentMethodOption

	// Transaction is the backend's payment record, set at Submitted.
	Transaction *Transaction

	// Payload is the method-specific view of Transaction, resolved once at
	// submit-response parse time.
	Payload PaymentPayload
}

// CreateForm is the caller-supplied input to Controller.Create.
type CreateForm struct {
	// Amount is the order amount as a decimal string. Required.
	Amount string

	// ProductID identifies the product being paid for. Required.
	ProductID string

	// ReturnURL is the absolute URL the payer returns to. Required.
	ReturnURL string

	// NotifyURL is the absolute URL for the server notification. Required.
	NotifyURL string

	// RequestID overrides the generated idempotency key. Optional.
	RequestID string

	// Currency overrides DefaultCurrency. Optional.
	Currency string
}

// ConfirmProof is the caller-supplied evidence for Controller.Confirm.
type ConfirmProof struct {
	// ProofID identifies the off-band transfer. Empty or "auto" generates
	// one client-side.
	ProofID string

	// ProofURLs point at uploaded evidence (receipts, screenshots). Optional.
	ProofURLs []string
}

// Confirmation is the record reported to the backend at confirm time. The
// Synthesized flags make the client-side identifier fallback observable
// instead of silently emulating backend data.
type Confirmation struct {
	TransactionID string
	ProofID       string
	AppName       string
	ProofURLs     []string

	// SynthesizedTransactionID is true when the backend never supplied a
	// transaction identifier and a client-generated one was used instead.
	SynthesizedTransactionID bool

	// SynthesizedProofID is true when the proof identifier was generated
	// client-side.
	SynthesizedProofID bool
}
