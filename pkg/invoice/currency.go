// pkg/invoice/currency.go

package invoice

// Currency is an ISO 4217 code. It is only ever printed as a prefix in
// front of amounts; no conversion happens.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	INR Currency = "INR"
)

// DefaultCurrency is used when a record carries no currency code.
const DefaultCurrency = USD

var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	CNY: "¥",
	JPY: "¥",
	CAD: "$",
	AUD: "$",
	INR: "₹",
}

// Currencies lists the selectable currencies in display order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, CNY, JPY, CAD, AUD, INR}
}

// Known reports whether c is one of the selectable currencies.
func (c Currency) Known() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Prefix is the string printed in front of every amount. Unknown codes are
// printed as they are.
func (c Currency) Prefix() string {
	if c == "" {
		return string(DefaultCurrency)
	}
	return string(c)
}

// Label is the caption used by currency selectors, e.g. "EUR (€)".
func (c Currency) Label() string {
	sym, ok := currencySymbols[c]
	if !ok {
		return c.Prefix()
	}
	return string(c) + " (" + sym + ")"
}
