// pkg/invoice/validate.go

package invoice

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a record.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid invoice: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the input a form is expected to sanitize before it hands
// a record to the renderer. The renderer itself accepts any record.
// The returned error is a *ValidationError or nil.
func (r Record) Validate() error {
	e := &ValidationError{}

	if r.DocumentType != "" && !r.DocumentType.Valid() {
		e.add("documentType", "unknown document type %q", r.DocumentType)
	}
	switch r.LogoPosition {
	case "", LogoLeft, LogoCenter, LogoRight:
	default:
		e.add("logoPosition", "unknown logo position %q", r.LogoPosition)
	}
	if r.Currency != "" && !r.Currency.Known() {
		if _, err := currency.ParseISO(string(r.Currency)); err != nil {
			e.add("currencyCode", "%q is not an ISO 4217 currency code", r.Currency)
		}
	}

	for i, it := range r.Items {
		checkNumber(e, fmt.Sprintf("items[%d].price", i), it.Price)
		checkNumber(e, fmt.Sprintf("items[%d].quantity", i), it.Quantity)
	}
	checkAmount(e, "taxPercent", r.TaxPercent)
	checkAmount(e, "discountPercent", r.DiscountPercent)
	checkAmount(e, "shippingAmount", r.ShippingAmount)

	if len(e.Fields) > 0 {
		return e
	}
	return nil
}

func checkNumber(e *ValidationError, field string, v float64) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		e.add(field, "must be a finite number")
	case v < 0:
		e.add(field, "must not be negative")
	}
}

func checkAmount(e *ValidationError, field string, a Amount) {
	if v, ok := a.Get(); ok {
		checkNumber(e, field, v)
	}
}
