// pkg/invoice/edit.go

package invoice

import (
	"fmt"
	"slices"
	"time"
)

// Edit derives a new record from a previous one. Edits never modify the
// record they are given in place.
type Edit func(Record) Record

// DefaultToggleValue is the value an optional amount takes when it is
// switched on.
const DefaultToggleValue = 10

func SetType(t DocumentType) Edit {
	return func(r Record) Record {
		r.DocumentType = t
		return r
	}
}

func SetCustomLabel(label string) Edit {
	return func(r Record) Record {
		r.CustomLabel = label
		return r
	}
}

func SetLogo(ref string) Edit {
	return func(r Record) Record {
		r.Logo = ref
		return r
	}
}

func ClearLogo() Edit {
	return SetLogo("")
}

func SetLogoPosition(p LogoPosition) Edit {
	return func(r Record) Record {
		r.LogoPosition = p
		return r
	}
}

// SetParties sets the issuer and the recipient.
func SetParties(from, to string) Edit {
	return func(r Record) Record {
		r.From, r.To = from, to
		return r
	}
}

func SetInvoiceNumber(n string) Edit {
	return func(r Record) Record {
		r.InvoiceNumber = n
		return r
	}
}

func SetIssueDate(t time.Time) Edit {
	return func(r Record) Record {
		r.IssueDate = t
		return r
	}
}

func SetDueDate(t time.Time) Edit {
	return func(r Record) Record {
		r.DueDate = t
		return r
	}
}

// AddItem appends a placeholder row named after its position.
func AddItem() Edit {
	return func(r Record) Record {
		items := make([]Item, len(r.Items), len(r.Items)+1)
		copy(items, r.Items)
		r.Items = append(items, Item{
			Description: fmt.Sprintf("Item %d", len(items)+1),
			Price:       0,
			Quantity:    1,
		})
		return r
	}
}

// UpdateItem replaces item i with fn(item). Out of range indexes leave the
// record unchanged.
func UpdateItem(i int, fn func(Item) Item) Edit {
	return func(r Record) Record {
		if i < 0 || i >= len(r.Items) {
			return r
		}
		r.Items = slices.Clone(r.Items)
		r.Items[i] = fn(r.Items[i])
		return r
	}
}

// RemoveItem drops item i. Out of range indexes leave the record unchanged.
func RemoveItem(i int) Edit {
	return func(r Record) Record {
		if i < 0 || i >= len(r.Items) {
			return r
		}
		r.Items = slices.Delete(slices.Clone(r.Items), i, i+1)
		return r
	}
}

func SetTax(a Amount) Edit {
	return func(r Record) Record {
		r.TaxPercent = a
		return r
	}
}

func SetDiscount(a Amount) Edit {
	return func(r Record) Record {
		r.DiscountPercent = a
		return r
	}
}

func SetShipping(a Amount) Edit {
	return func(r Record) Record {
		r.ShippingAmount = a
		return r
	}
}

// EnableTax switches the tax line on with DefaultToggleValue. A tax that is
// already present is kept.
func EnableTax() Edit {
	return func(r Record) Record {
		r.TaxPercent = enable(r.TaxPercent)
		return r
	}
}

func EnableDiscount() Edit {
	return func(r Record) Record {
		r.DiscountPercent = enable(r.DiscountPercent)
		return r
	}
}

func EnableShipping() Edit {
	return func(r Record) Record {
		r.ShippingAmount = enable(r.ShippingAmount)
		return r
	}
}

func DisableTax() Edit      { return SetTax(None()) }
func DisableDiscount() Edit { return SetDiscount(None()) }
func DisableShipping() Edit { return SetShipping(None()) }

func enable(a Amount) Amount {
	if a.IsSet() {
		return a
	}
	return Some(DefaultToggleValue)
}

func SetAdditionalInfo(text string) Edit {
	return func(r Record) Record {
		r.AdditionalInfo = text
		return r
	}
}

func SetMarks(text string) Edit {
	return func(r Record) Record {
		r.Marks = text
		return r
	}
}

func SetNote(text string) Edit {
	return func(r Record) Record {
		r.Note = text
		return r
	}
}

// SetSignature sets the signature image and the signer's label.
func SetSignature(image, label string) Edit {
	return func(r Record) Record {
		r.SignatureImage, r.SignatureLabel = image, label
		return r
	}
}

func ClearSignature() Edit {
	return func(r Record) Record {
		r.SignatureImage = ""
		return r
	}
}

func SetCurrency(c Currency) Edit {
	return func(r Record) Record {
		r.Currency = c
		return r
	}
}

// Apply runs edits in order on a copy of r.
func Apply(r Record, edits ...Edit) Record {
	next := r.Clone()
	for _, e := range edits {
		next = e(next)
	}
	return next
}

// Snapshot is one version of an edited record.
type Snapshot struct {
	Version uint64
	Record  Record
}

// Editor owns the current version of a record. Every Apply produces a new
// snapshot; snapshots handed out earlier are never changed.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	cur Snapshot
}

// NewEditor starts editing r at version 1.
func NewEditor(r Record) *Editor {
	return &Editor{cur: Snapshot{Version: 1, Record: r.Clone()}}
}

// Snapshot returns the current version.
func (e *Editor) Snapshot() Snapshot {
	s := e.cur
	s.Record = s.Record.Clone()
	return s
}

// Apply applies edits as one step and returns the new version.
func (e *Editor) Apply(edits ...Edit) Snapshot {
	e.cur = Snapshot{
		Version: e.cur.Version + 1,
		Record:  Apply(e.cur.Record, edits...),
	}
	return e.Snapshot()
}
