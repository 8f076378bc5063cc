package checkoutsdk

// PaymentPayload is the method-specific view of a submitted transaction,
// resolved exactly once when the submit response is parsed. Callers switch on
// the concrete type instead of probing optional fields at render time.
type PaymentPayload interface {
	// PaymentMethod returns the method code this payload was resolved for.
	PaymentMethod() string
}

// UPIPayload carries the deep links for completing a UPI transfer.
type UPIPayload struct {
	// IntentURL is the generic upi:// intent link, when the backend issued one.
	IntentURL string

	// AppLinks maps specific payment apps to their dedicated links.
	AppLinks map[string]string
}

func (UPIPayload) PaymentMethod() string { return MethodUPI }

// BankTransferPayload carries the instructions link for a manual bank
// transfer (IMPS/NEFT).
type BankTransferPayload struct {
	// InstructionsURL points at the hosted beneficiary details page.
	InstructionsURL string
}

func (BankTransferPayload) PaymentMethod() string { return MethodBankTransfer }

// OtherPayload is the catch-all for methods without a dedicated payload
// shape. The raw links are passed through untouched.
type OtherPayload struct {
	Method string
	Links  map[string]string
}

func (p OtherPayload) PaymentMethod() string { return p.Method }

// clonePayload returns a payload whose maps are detached from the original,
// so a session snapshot cannot be mutated into the live session.
func clonePayload(p PaymentPayload) PaymentPayload {
	switch payload := p.(type) {
	case UPIPayload:
		payload.AppLinks = cloneLinks(payload.AppLinks)
		return payload
	case OtherPayload:
		payload.Links = cloneLinks(payload.Links)
		return payload
	default:
		return p
	}
}

func cloneLinks(links map[string]string) map[string]string {
	if links == nil {
		return nil
	}
	out := make(map[string]string, len(links))
	for app, link := range links {
		out[app] = link
	}
	return out
}

// resolvePayload builds the typed payload for the selected method from the
// backend's transaction record.
func resolvePayload(method string, tx Transaction) PaymentPayload {
	switch method {
	case MethodUPI:
		payload := UPIPayload{AppLinks: make(map[string]string, len(tx.Links))}
		for app, link := range tx.Links {
			if app == "upi" {
				payload.IntentURL = link
				continue
			}
			payload.AppLinks[app] = link
		}
		return payload

	case MethodBankTransfer:
		return BankTransferPayload{InstructionsURL: tx.Links["bank"]}

	default:
		links := make(map[string]string, len(tx.Links))
		for app, link := range tx.Links {
			links[app] = link
		}
		return OtherPayload{Method: method, Links: links}
	}
}
