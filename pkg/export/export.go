// pkg/export/export.go

// Package export materializes a rendered document into a PDF file.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/invoice-generator/pkg/pdfs"
	"github.com/invoice-generator/pkg/render"
)

// ImageSource resolves image references to image data. format is one of
// "PNG", "JPG" or "GIF".
type ImageSource interface {
	Load(ctx context.Context, ref string) (data []byte, format string, err error)
}

// Options configures an export.
type Options struct {
	// Images resolves logo and signature references. Without it images are
	// left out.
	Images ImageSource

	// OnImageError is told about every image that could not be placed. The
	// default logs a warning.
	OnImageError func(ref string, err error)
}

func (o Options) imageError(ref string, err error) {
	if o.OnImageError != nil {
		o.OnImageError(ref, err)
		return
	}
	log.Printf("[WARN] skipping image %q: %v", ref, err)
}

// Draw paints doc onto w. A broken image is reported through
// opts.OnImageError and skipped; the rest of the document is still drawn.
func Draw(ctx context.Context, doc *render.Document, w pdfs.Writer, opts Options) error {
	w.AddPage()
	for _, el := range doc.Page.Elements {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case el.Image != nil:
			drawImage(ctx, w, string(el.Region), el.Image, opts)
		case el.Table != nil:
			drawTable(w, el.Table)
		default:
			drawLines(w, el.Lines)
		}
	}
	return nil
}

func drawLines(w pdfs.Writer, lines []render.Line) {
	for _, l := range lines {
		style := pdfs.StyleRegular
		if l.Bold {
			style = pdfs.StyleBold
		}
		w.SetFont(style, l.Size)
		w.Cell(l.Box.X, l.Box.Y, l.Box.W, l.Box.H, l.Text, pdfs.CellStyle{Align: l.Align})
	}
}

func drawTable(w pdfs.Writer, t *render.Table) {
	drawRow(w, t.Header, t.FontSize)
	for _, row := range t.Rows {
		drawRow(w, row, t.FontSize)
	}
}

func drawRow(w pdfs.Writer, row render.Row, size float64) {
	style := pdfs.StyleRegular
	if row.Header {
		style = pdfs.StyleBold
	}
	w.SetFont(style, size)
	if row.Fill != nil {
		w.SetFillColor(int(row.Fill.R), int(row.Fill.G), int(row.Fill.B))
	}
	for _, c := range row.Cells {
		w.Cell(c.Box.X, c.Box.Y, c.Box.W, c.Box.H, c.Text, pdfs.CellStyle{
			Align: pdfs.AlignCenter,
			Fill:  row.Fill != nil,
		})
	}
	b := row.Box
	w.Line(b.X, b.Y+b.H, b.X+b.W, b.Y+b.H)
}

func drawImage(ctx context.Context, w pdfs.Writer, name string, img *render.Image, opts Options) {
	if opts.Images == nil {
		return
	}
	data, format, err := opts.Images.Load(ctx, img.Ref)
	if err == nil {
		err = w.RegisterImage(name, format, data)
	}
	if err != nil {
		opts.imageError(img.Ref, err)
		return
	}
	w.Image(name, img.Box.X, img.Box.Y, img.Box.W, img.Box.H)
}

// PDFOptions are the settings of the gofpdf backend used by WritePDF.
type PDFOptions struct {
	FontFile     string
	Compress     bool
	Creator      string
	CreationDate time.Time
}

// NewWriter creates the gofpdf writer for doc.
func NewWriter(doc *render.Document, p PDFOptions) (*pdfs.FpdfWriter, error) {
	return pdfs.NewFpdfWriter(pdfs.FpdfOptions{
		Size:         doc.Page.Size,
		Title:        doc.Title,
		Creator:      p.Creator,
		FontFile:     p.FontFile,
		Compress:     p.Compress,
		CreationDate: p.CreationDate,
	})
}

// WritePDF draws doc with the gofpdf backend and writes the file to out.
func WritePDF(ctx context.Context, doc *render.Document, out io.Writer, p PDFOptions, opts Options) (int64, error) {
	w, err := NewWriter(doc, p)
	if err != nil {
		return 0, err
	}
	if err := Draw(ctx, doc, w, opts); err != nil {
		return 0, err
	}
	n, err := w.WriteTo(out)
	if err != nil {
		return n, fmt.Errorf("export %s: %w", doc.Filename, err)
	}
	return n, nil
}

// Bytes is WritePDF into memory.
func Bytes(ctx context.Context, doc *render.Document, p PDFOptions, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WritePDF(ctx, doc, &buf, p, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile exports doc to path.
func WriteFile(ctx context.Context, doc *render.Document, path string, p PDFOptions, opts Options) error {
	w, err := NewWriter(doc, p)
	if err != nil {
		return err
	}
	if err := Draw(ctx, doc, w, opts); err != nil {
		return err
	}
	if err := w.WriteToFile(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
