// pkg/pdfs/writer.go

package pdfs

import "io"

// Align is the horizontal alignment of text inside a cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font styles accepted by SetFont.
const (
	StyleRegular = ""
	StyleBold    = "B"
)

// CellStyle controls how a cell is painted.
type CellStyle struct {
	Align Align
	Fill  bool // paint the background with the current fill color
}

// Writer is a minimal, stream-style, append-only PDF writer. Coordinates are in
// points from the top-left corner of the current page.
type Writer interface {
	PaperSize() PaperSize

	AddPage()

	SetFont(style string, size float64)
	SetFillColor(r, g, b int)

	Cell(x, y, w, h float64, text string, style CellStyle)
	Line(x1, y1, x2, y2 float64)

	// RegisterImage makes image data available under name. format is one of
	// "PNG", "JPG" or "GIF".
	RegisterImage(name string, format string, data []byte) error
	Image(name string, x, y, w, h float64)

	WriteTo(w io.Writer) (int64, error)
	WriteToFile(filepath string) error
	ProduceBytes() ([]byte, error)
}
