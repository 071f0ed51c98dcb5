// pkg/invoice/invoice.go

package invoice

import (
	"slices"
	"time"
)

// DocumentType selects the heading printed on the document.
type DocumentType string

const (
	TypeInvoice  DocumentType = "invoice"
	TypeEstimate DocumentType = "estimate"
	TypeQuote    DocumentType = "quote"
	TypeCustom   DocumentType = "custom"
)

// DocumentTypes lists the selectable document types in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{TypeInvoice, TypeEstimate, TypeQuote, TypeCustom}
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	return slices.Contains(DocumentTypes(), t)
}

// LogoPosition is the horizontal placement of the logo.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// Resolve maps the zero value and unknown positions to LogoLeft.
func (p LogoPosition) Resolve() LogoPosition {
	switch p {
	case LogoCenter, LogoRight:
		return p
	default:
		return LogoLeft
	}
}

// DefaultDueDays is the default distance between issue and due date.
const DefaultDueDays = 30

// Record is the complete user-entered description of one invoice,
// estimate or quote. Derived totals are never stored; see Totals.
type Record struct {
	DocumentType DocumentType `json:"documentType"`
	CustomLabel  string       `json:"customLabel,omitempty"`

	Logo         string       `json:"logo,omitempty"`
	LogoPosition LogoPosition `json:"logoPosition,omitempty"`

	From          string    `json:"from"`
	To            string    `json:"to"`
	InvoiceNumber string    `json:"invoiceNumber"`
	IssueDate     time.Time `json:"issueDate"`
	DueDate       time.Time `json:"dueDate"`

	Items []Item `json:"items"`

	TaxPercent      Amount `json:"taxPercent"`
	DiscountPercent Amount `json:"discountPercent"`
	ShippingAmount  Amount `json:"shippingAmount"`

	AdditionalInfo string `json:"additionalInfo,omitempty"`
	Marks          string `json:"marks,omitempty"`
	// Note is the legacy free-text note, merged into the marks block.
	Note string `json:"note,omitempty"`

	SignatureImage string `json:"signatureImage,omitempty"`
	SignatureLabel string `json:"signatureLabel,omitempty"`

	Currency Currency `json:"currencyCode,omitempty"`
}

// Item represents one billable row of the invoice.
type Item struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Note        string  `json:"note,omitempty"`
}

// Total is the line total, price times quantity.
func (it Item) Total() float64 {
	return it.Price * it.Quantity
}

// New returns the record a fresh form starts from.
func New(now time.Time) Record {
	return Record{
		DocumentType: TypeInvoice,
		LogoPosition: LogoLeft,
		IssueDate:    now,
		DueDate:      now.AddDate(0, 0, DefaultDueDays),
		Currency:     USD,
		Items: []Item{
			{Description: "Item 1", Price: 100, Quantity: 1},
		},
	}
}

// Clone returns a copy of r that shares no mutable state with it.
func (r Record) Clone() Record {
	r.Items = slices.Clone(r.Items)
	return r
}

// TypeLabel is the custom label for custom documents and the type name
// otherwise.
func (r Record) TypeLabel() string {
	if r.DocumentType == TypeCustom {
		return r.CustomLabel
	}
	return string(r.DocumentType)
}

// Title is the document title, e.g. "invoice-0042".
func (r Record) Title() string {
	return r.TypeLabel() + "-" + r.InvoiceNumber
}

// Filename is the name an exported document is saved under.
func (r Record) Filename() string {
	return r.Title() + ".pdf"
}

// CombinedMarks merges the legacy note into the marks text. The note comes
// first, prefixed with "Note:" on its own line, and a blank line separates
// it from the marks.
func (r Record) CombinedMarks() string {
	if r.Note == "" {
		return r.Marks
	}
	note := "Note:\n" + r.Note
	if r.Marks == "" {
		return note
	}
	return note + "\n\n" + r.Marks
}
