// pkg/pdfs/fpdf.go

package pdfs

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// FpdfOptions configures a gofpdf-backed Writer.
type FpdfOptions struct {
	Size    PaperSize // zero means A4
	Title   string
	Creator string

	// FontFile is an optional UTF-8 TrueType font used for all text. Without
	// it the core Helvetica font is used and text is mapped to cp1252.
	FontFile string

	Compress bool

	// CreationDate is stamped into the document info. Set it to get
	// reproducible files.
	CreationDate time.Time
}

const utf8Family = "body"

// FpdfWriter implements Writer on top of gofpdf.
type FpdfWriter struct {
	pdf    *gofpdf.Fpdf
	size   PaperSize
	family string
	tr     func(string) string
}

var _ Writer = (*FpdfWriter)(nil)

// NewFpdfWriter creates an empty document. Pages are added with AddPage.
func NewFpdfWriter(opts FpdfOptions) (*FpdfWriter, error) {
	size := opts.Size
	if size.Width == 0 || size.Height == 0 {
		size = A4Size
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	if !opts.CreationDate.IsZero() {
		pdf.SetCreationDate(opts.CreationDate)
	}
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}

	w := &FpdfWriter{pdf: pdf, size: size, family: "Helvetica"}
	if opts.FontFile != "" {
		pdf.AddUTF8Font(utf8Family, StyleRegular, opts.FontFile)
		pdf.AddUTF8Font(utf8Family, StyleBold, opts.FontFile)
		w.family = utf8Family
		w.tr = func(s string) string { return s }
	} else {
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdfs: %w", err)
	}
	return w, nil
}

func (w *FpdfWriter) PaperSize() PaperSize {
	return w.size
}

func (w *FpdfWriter) AddPage() {
	w.pdf.AddPage()
}

func (w *FpdfWriter) SetFont(style string, size float64) {
	w.pdf.SetFont(w.family, style, size)
}

func (w *FpdfWriter) SetFillColor(r, g, b int) {
	w.pdf.SetFillColor(r, g, b)
}

func (w *FpdfWriter) Cell(x, y, width, h float64, text string, style CellStyle) {
	align := style.Align
	if align == "" {
		align = AlignLeft
	}
	w.pdf.SetXY(x, y)
	w.pdf.CellFormat(width, h, w.tr(text), "", 0, string(align)+"M", style.Fill, 0, "")
}

func (w *FpdfWriter) Line(x1, y1, x2, y2 float64) {
	w.pdf.SetLineWidth(1)
	w.pdf.Line(x1, y1, x2, y2)
}

// RegisterImage registers data under name. A failed registration leaves the
// document usable.
func (w *FpdfWriter) RegisterImage(name string, format string, data []byte) error {
	w.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
	if err := w.pdf.Error(); err != nil {
		w.pdf.ClearError()
		return fmt.Errorf("pdfs: image %q: %w", name, err)
	}
	return nil
}

func (w *FpdfWriter) Image(name string, x, y, width, height float64) {
	w.pdf.ImageOptions(name, x, y, width, height, false, gofpdf.ImageOptions{}, 0, "")
}

// WriteTo implements io.WriterTo.
func (w *FpdfWriter) WriteTo(out io.Writer) (int64, error) {
	cw := &countWriter{w: out}
	err := w.pdf.Output(cw)
	return cw.n, err
}

func (w *FpdfWriter) WriteToFile(filepath string) error {
	return w.pdf.OutputFileAndClose(filepath)
}

func (w *FpdfWriter) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n) // Output may call Write several times
	return n, err
}
