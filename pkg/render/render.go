// pkg/render/render.go

// Package render maps an invoice record onto a single fixed-layout A4 page.
//
// Render is a pure function: the same record and options always produce a
// deep-equal Document. Images are only referenced, never loaded.
package render

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/pdfs"
)

// Layout metrics, in points.
const (
	PageMargin = 30

	BaseFontSize   = 12
	SmallFontSize  = 10
	HeaderFontSize = 18
	lineSpacing    = 1.2

	LogoSize = 100
	logoGap  = 10

	headerGap  = 10
	detailsGap = 5
	sectionGap = 15
	cellPad    = 5

	infoWidth = 180

	marksWidth  = 300
	bottomInset = 80

	signatureWidth       = 150
	SignatureImageWidth  = 100
	SignatureImageHeight = 50
	signatureGap         = 5
)

// TableColumns are the headings of the items table.
var TableColumns = []string{"Description", "Price", "Quantity", "Note", "Total"}

// HeaderFill is the background of the table header row.
var HeaderFill = Color{R: 0xf2, G: 0xf2, B: 0xf2}

// EmptyNote is printed in the note column of items without a note.
const EmptyNote = "-"

var logoAlign = map[invoice.LogoPosition]pdfs.Align{
	invoice.LogoLeft:   pdfs.AlignLeft,
	invoice.LogoCenter: pdfs.AlignCenter,
	invoice.LogoRight:  pdfs.AlignRight,
}

// Options controls locale dependent output. The zero value renders en-US
// dates in UTC on A4 paper.
type Options struct {
	Locale   language.Tag
	Location *time.Location
	Size     pdfs.PaperSize
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Size.Width == 0 || o.Size.Height == 0 {
		o.Size = pdfs.A4Size
	}
	return o
}

type layout struct {
	opts       Options
	dateLayout string
	currency   string
	y          float64 // top of the next flowing element
}

func (l *layout) contentWidth() float64 {
	return l.opts.Size.Width - 2*PageMargin
}

func lineHeight(size float64) float64 {
	return size * lineSpacing
}

// Render lays out rec on one page.
func Render(rec invoice.Record, opts Options) *Document {
	opts = opts.withDefaults()
	l := &layout{
		opts:       opts,
		dateLayout: dateLayout(opts.Locale),
		currency:   rec.Currency.Prefix(),
		y:          PageMargin,
	}

	var els []Element
	if rec.AdditionalInfo != "" {
		els = append(els, l.additionalInfo(rec.AdditionalInfo))
	}
	if rec.Logo != "" {
		els = append(els, l.logo(rec.Logo, rec.LogoPosition))
	}
	els = append(els,
		l.header(rec.TypeLabel()),
		l.details(rec),
		l.items(rec.Items),
		l.totals(rec),
	)
	if marks := rec.CombinedMarks(); marks != "" {
		els = append(els, l.marks(marks))
	}
	if rec.SignatureImage != "" {
		els = append(els, l.signature(rec.SignatureImage))
	}

	return &Document{
		Title:    rec.Title(),
		Filename: rec.Filename(),
		Page: Page{
			Size:     opts.Size,
			Margin:   PageMargin,
			FontSize: BaseFontSize,
			Elements: els,
		},
	}
}

func (l *layout) money(v float64) string {
	return l.currency + " " + formatFixed2(v)
}

// textBlock stacks lines of the given size from top inside a box of width w.
func textBlock(texts []string, x, top, w, size float64, align pdfs.Align) []Line {
	lh := lineHeight(size)
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{
			Text:  t,
			Box:   Box{X: x, Y: top + float64(i)*lh, W: w, H: lh},
			Size:  size,
			Align: align,
		}
	}
	return lines
}

func (l *layout) additionalInfo(text string) Element {
	texts := splitLines(text)
	x := l.opts.Size.Width - PageMargin - infoWidth
	return Element{
		Region: RegionAdditionalInfo,
		Box:    Box{X: x, Y: PageMargin, W: infoWidth, H: float64(len(texts)) * lineHeight(SmallFontSize)},
		Lines:  textBlock(texts, x, PageMargin, infoWidth, SmallFontSize, pdfs.AlignRight),
	}
}

func (l *layout) logo(ref string, pos invoice.LogoPosition) Element {
	var x float64
	switch logoAlign[pos.Resolve()] {
	case pdfs.AlignCenter:
		x = (l.opts.Size.Width - LogoSize) / 2
	case pdfs.AlignRight:
		x = l.opts.Size.Width - PageMargin - LogoSize
	default:
		x = PageMargin
	}
	box := Box{X: x, Y: l.y, W: LogoSize, H: LogoSize}
	l.y += LogoSize + logoGap
	return Element{
		Region: RegionLogo,
		Box:    box,
		Image:  &Image{Ref: ref, Box: box},
	}
}

func (l *layout) header(label string) Element {
	text := cases.Upper(l.opts.Locale).String(label)
	lh := lineHeight(HeaderFontSize)
	box := Box{X: PageMargin, Y: l.y, W: l.contentWidth(), H: lh}
	l.y += lh + headerGap
	return Element{
		Region: RegionHeader,
		Box:    box,
		Lines: []Line{{
			Text:  text,
			Box:   box,
			Size:  HeaderFontSize,
			Bold:  true,
			Align: pdfs.AlignCenter,
		}},
	}
}

// details prints the two column rows. Left texts are left aligned and right
// texts right aligned across the full content width. Multi-line texts are
// stacked and the row grows to its taller column.
func (l *layout) details(rec invoice.Record) Element {
	rows := [][2]string{
		{"From: " + rec.From, "To: " + rec.To},
		{"Invoice #" + rec.InvoiceNumber, "Date Created: " + formatDate(rec.IssueDate, l.dateLayout, l.opts.Location)},
		{"Due Date: " + formatDate(rec.DueDate, l.dateLayout, l.opts.Location)},
	}
	lh := lineHeight(BaseFontSize)
	top := l.y
	var lines []Line
	for _, row := range rows {
		left := textBlock(breakLines(row[0]), PageMargin, l.y, l.contentWidth(), BaseFontSize, pdfs.AlignLeft)
		var right []Line
		if row[1] != "" {
			right = textBlock(breakLines(row[1]), PageMargin, l.y, l.contentWidth(), BaseFontSize, pdfs.AlignRight)
		}
		lines = append(lines, left...)
		lines = append(lines, right...)
		l.y += float64(max(len(left), len(right)))*lh + detailsGap
	}
	el := Element{
		Region: RegionDetails,
		Box:    Box{X: PageMargin, Y: top, W: l.contentWidth(), H: l.y - top},
		Lines:  lines,
	}
	l.y += sectionGap
	return el
}

func (l *layout) tableRow(texts []string) Row {
	h := lineHeight(BaseFontSize) + 2*cellPad
	colW := l.contentWidth() / float64(len(TableColumns))
	row := Row{Box: Box{X: PageMargin, Y: l.y, W: l.contentWidth(), H: h}}
	for i, t := range texts {
		row.Cells = append(row.Cells, Cell{
			Text: t,
			Box:  Box{X: PageMargin + float64(i)*colW, Y: l.y, W: colW, H: h},
		})
	}
	l.y += h
	return row
}

func (l *layout) items(items []invoice.Item) Element {
	top := l.y
	fill := HeaderFill
	header := l.tableRow(TableColumns)
	header.Header = true
	header.Fill = &fill

	rows := make([]Row, 0, len(items))
	for _, it := range items {
		note := it.Note
		if note == "" {
			note = EmptyNote
		}
		rows = append(rows, l.tableRow([]string{
			it.Description,
			l.money(it.Price),
			formatNumber(it.Quantity),
			note,
			l.money(it.Total()),
		}))
	}
	el := Element{
		Region: RegionItems,
		Box:    Box{X: PageMargin, Y: top, W: l.contentWidth(), H: l.y - top},
		Table:  &Table{Header: header, Rows: rows, FontSize: BaseFontSize},
	}
	l.y += sectionGap
	return el
}

func (l *layout) totals(rec invoice.Record) Element {
	t := rec.Totals()
	texts := []string{"Subtotal: " + l.money(t.Subtotal)}
	if rec.TaxPercent.IsSet() {
		texts = append(texts, "Tax ("+formatNumber(rec.TaxPercent.Neutral())+"%): "+l.money(t.Tax))
	}
	if rec.DiscountPercent.IsSet() {
		texts = append(texts, "Discount ("+formatNumber(rec.DiscountPercent.Neutral())+"%): "+l.money(t.Discount))
	}
	if v, ok := rec.ShippingAmount.Get(); ok {
		texts = append(texts, "Shipping: "+l.money(v))
	}
	texts = append(texts, "Total: "+l.money(t.Total))

	l.y += sectionGap
	lines := textBlock(texts, PageMargin, l.y, l.contentWidth(), BaseFontSize, pdfs.AlignRight)
	lines[len(lines)-1].Bold = true
	h := float64(len(lines)) * lineHeight(BaseFontSize)
	el := Element{
		Region: RegionTotals,
		Box:    Box{X: PageMargin, Y: l.y, W: l.contentWidth(), H: h},
		Lines:  lines,
	}
	l.y += h
	return el
}

func (l *layout) marks(text string) Element {
	texts := splitLines(text)
	h := float64(len(texts)) * lineHeight(SmallFontSize)
	top := l.opts.Size.Height - bottomInset - h
	return Element{
		Region: RegionMarks,
		Box:    Box{X: PageMargin, Y: top, W: marksWidth, H: h},
		Lines:  textBlock(texts, PageMargin, top, marksWidth, SmallFontSize, pdfs.AlignLeft),
	}
}

func (l *layout) signature(ref string) Element {
	h := float64(SignatureImageHeight + signatureGap)
	box := Box{
		X: l.opts.Size.Width - PageMargin - signatureWidth,
		Y: l.opts.Size.Height - bottomInset - h,
		W: signatureWidth,
		H: h,
	}
	return Element{
		Region: RegionSignature,
		Box:    box,
		Image: &Image{
			Ref: ref,
			Box: Box{
				X: box.X + (signatureWidth-SignatureImageWidth)/2,
				Y: box.Y,
				W: SignatureImageWidth,
				H: SignatureImageHeight,
			},
		},
	}
}
