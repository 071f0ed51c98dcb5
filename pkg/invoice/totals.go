// pkg/invoice/totals.go

package invoice

// Totals holds the amounts derived from a record. Values are kept at full
// float precision; rounding happens when they are displayed.
type Totals struct {
	Subtotal float64
	Tax      float64
	Discount float64
	Shipping float64
	Total    float64
}

// Subtotal is the sum of all line totals.
func (r Record) Subtotal() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.Total()
	}
	return sum
}

// Totals computes the derived amounts of r.
//
// Tax and discount are both taken off the pre-tax subtotal for their own
// lines, but the total compounds them: the subtotal is raised by the tax
// rate, the result is lowered by the discount rate, and shipping is added
// last. Absent terms are neutral.
func (r Record) Totals() Totals {
	sub := r.Subtotal()
	tax := r.TaxPercent.Neutral()
	disc := r.DiscountPercent.Neutral()
	ship := r.ShippingAmount.Neutral()
	return Totals{
		Subtotal: sub,
		Tax:      sub * (tax / 100),
		Discount: sub * (disc / 100),
		Shipping: ship,
		Total:    sub*(1+tax/100)*(1-disc/100) + ship,
	}
}
