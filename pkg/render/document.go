// pkg/render/document.go

package render

import "github.com/invoice-generator/pkg/pdfs"

// Region names one of the fixed areas of the page.
type Region string

const (
	RegionAdditionalInfo Region = "additional-info"
	RegionLogo           Region = "logo"
	RegionHeader         Region = "header"
	RegionDetails        Region = "details"
	RegionItems          Region = "items"
	RegionTotals         Region = "totals"
	RegionMarks          Region = "marks"
	RegionSignature      Region = "signature"
)

// Box is a rectangle in points, measured from the top-left page corner.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Color is an RGB fill color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Line is one line of text placed in its box.
type Line struct {
	Text  string     `json:"text"`
	Box   Box        `json:"box"`
	Size  float64    `json:"size"`
	Bold  bool       `json:"bold,omitempty"`
	Align pdfs.Align `json:"align"`
}

// Image asks the viewer to place the referenced image in Box.
type Image struct {
	Ref string `json:"ref"`
	Box Box    `json:"box"`
}

type Cell struct {
	Text string `json:"text"`
	Box  Box    `json:"box"`
}

// Row is one table row. Header rows are bold and filled.
type Row struct {
	Box    Box    `json:"box"`
	Cells  []Cell `json:"cells"`
	Header bool   `json:"header,omitempty"`
	Fill   *Color `json:"fill,omitempty"`
}

// Table is the items table. Every row has a bottom border and its cells are
// centered.
type Table struct {
	Header   Row     `json:"header"`
	Rows     []Row   `json:"rows"`
	FontSize float64 `json:"fontSize"`
}

// Element is one region of the page. Exactly one of Lines, Image and Table
// carries the content.
type Element struct {
	Region Region `json:"region"`
	Box    Box    `json:"box"`
	Lines  []Line `json:"lines,omitempty"`
	Image  *Image `json:"image,omitempty"`
	Table  *Table `json:"table,omitempty"`
}

// Page is the single page of a document. Elements appear in drawing order.
type Page struct {
	Size     pdfs.PaperSize `json:"size"`
	Margin   float64        `json:"margin"`
	FontSize float64        `json:"fontSize"`
	Elements []Element      `json:"elements"`
}

// Document is the rendered form of one record.
type Document struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Page     Page   `json:"page"`
}

// Element returns the element for region r, if the page has one.
func (d *Document) Element(r Region) (Element, bool) {
	for _, el := range d.Page.Elements {
		if el.Region == r {
			return el, true
		}
	}
	return Element{}, false
}

// Texts returns the text of every line of el, or of every cell row by row
// for a table.
func (el Element) Texts() []string {
	var out []string
	for _, l := range el.Lines {
		out = append(out, l.Text)
	}
	if el.Table != nil {
		for _, row := range append([]Row{el.Table.Header}, el.Table.Rows...) {
			for _, c := range row.Cells {
				out = append(out, c.Text)
			}
		}
	}
	return out
}
