package checkoutsdk

import "strings"

// Well-known payment method codes.
const (
	MethodUPI          = "upi"
	MethodBankTransfer = "bank_transfer"
	MethodQR           = "qr"
	MethodWallet       = "wallet"
)

// PaymentMethodOption is a selectable payment method, derived fresh on every
// resolver run and never mutated in place.
type PaymentMethodOption struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// methodMeta is the static display catalog for known method codes.
type methodMeta struct {
	displayName string
	description string
	appName     string
}

var methodCatalog = map[string]methodMeta{
	MethodUPI: {
		displayName: "UPI",
		description: "Pay instantly with any UPI app",
		appName:     "upi",
	},
	MethodBankTransfer: {
		displayName: "Bank Transfer",
		description: "Transfer from your bank account (IMPS/NEFT)",
		appName:     "bank",
	},
	MethodQR: {
		displayName: "QR Code",
		description: "Scan and pay with any QR-enabled app",
		appName:     "qr",
	},
	MethodWallet: {
		displayName: "Wallet",
		description: "Pay from your stored wallet balance",
		appName:     "wallet",
	},
}

// fallbackMethods is returned whenever country resolution yields nothing. An
// unselectable checkout is a worse failure than an imprecise one, so past the
// info step the resolver never returns zero options.
var fallbackMethods = []string{MethodUPI, MethodBankTransfer}

// ResolveMethods turns the services catalog into an ordered, deduplicated
// option list for the given country. An empty country falls back to the first
// country the catalog lists; an unresolvable country or an empty method list
// falls back to the fixed default set.
func ResolveMethods(catalog *ServicesCatalog, country string) []PaymentMethodOption {
	var codes []string
	if catalog != nil {
		if country == "" && len(catalog.Countries) > 0 {
			country = catalog.Countries[0]
		}
		if cfg, ok := catalog.Configs[country]; ok {
			codes = cfg.MethodCodes
		}
	}
	if len(codes) == 0 {
		codes = fallbackMethods
	}

	seen := make(map[string]bool, len(codes))
	options := make([]PaymentMethodOption, 0, len(codes))
	for _, code := range codes {
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		options = append(options, optionFor(code))
	}

	// All codes were blank or duplicates of blanks. Same availability rule
	// applies.
	if len(options) == 0 {
		for _, code := range fallbackMethods {
			options = append(options, optionFor(code))
		}
	}

	return options
}

// optionFor maps a method code to its display option. Unknown codes pass
// through with the upper-cased raw code standing in for the display fields.
func optionFor(code string) PaymentMethodOption {
	if meta, ok := methodCatalog[code]; ok {
		return PaymentMethodOption{
			Code:        code,
			DisplayName: meta.displayName,
			Description: meta.description,
		}
	}

	name := strings.ToUpper(code)
	return PaymentMethodOption{
		Code:        code,
		DisplayName: name,
		Description: name + " payment",
	}
}

// appNameFor infers the payment app name reported at confirm time from the
// selected method code.
func appNameFor(code string) string {
	if meta, ok := methodCatalog[code]; ok {
		return meta.appName
	}
	return code
}
