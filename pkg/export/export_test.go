// pkg/export/export_test.go

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/pdfs"
	"github.com/invoice-generator/pkg/render"
)

// recorder is a pdfs.Writer that logs the calls it receives.
type recorder struct {
	ops    []string
	images map[string]string
	badFmt string
}

func (r *recorder) PaperSize() pdfs.PaperSize { return pdfs.A4Size }
func (r *recorder) AddPage()                  { r.ops = append(r.ops, "page") }
func (r *recorder) SetFont(style string, size float64) {
	r.ops = append(r.ops, fmt.Sprintf("font %q %g", style, size))
}
func (r *recorder) SetFillColor(cr, cg, cb int) {
	r.ops = append(r.ops, fmt.Sprintf("fill %d %d %d", cr, cg, cb))
}
func (r *recorder) Cell(x, y, w, h float64, text string, style pdfs.CellStyle) {
	r.ops = append(r.ops, fmt.Sprintf("cell %s %q fill=%t", style.Align, text, style.Fill))
}
func (r *recorder) Line(x1, y1, x2, y2 float64) { r.ops = append(r.ops, "line") }
func (r *recorder) RegisterImage(name, format string, data []byte) error {
	if format == r.badFmt {
		return errors.New("unsupported")
	}
	if r.images == nil {
		r.images = map[string]string{}
	}
	r.images[name] = string(data)
	return nil
}
func (r *recorder) Image(name string, x, y, w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("image %s %g %g %g %g", name, x, y, w, h))
}
func (r *recorder) WriteTo(w io.Writer) (int64, error) { return 0, nil }
func (r *recorder) WriteToFile(string) error           { return nil }
func (r *recorder) ProduceBytes() ([]byte, error)      { return nil, nil }

func (r *recorder) cells() []string {
	var out []string
	for _, op := range r.ops {
		if strings.HasPrefix(op, "cell ") {
			out = append(out, op)
		}
	}
	return out
}

type mapSource map[string][]byte

func (m mapSource) Load(_ context.Context, ref string) ([]byte, string, error) {
	data, ok := m[ref]
	if !ok {
		return nil, "", fmt.Errorf("no image %q", ref)
	}
	return data, "PNG", nil
}

var issued = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func sample() invoice.Record {
	return invoice.Apply(invoice.New(issued),
		invoice.SetParties("Acme", "Globex"),
		invoice.SetInvoiceNumber("0042"),
	)
}

func TestDrawText(t *testing.T) {
	rec := invoice.Apply(sample(), invoice.SetTax(invoice.Some(10)))
	rec.Items = nil
	doc := render.Render(rec, render.Options{})

	var w recorder
	if err := Draw(context.Background(), doc, &w, Options{}); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`cell C "INVOICE" fill=false`,
		`cell L "From: Acme" fill=false`,
		`cell R "To: Globex" fill=false`,
		`cell L "Invoice #0042" fill=false`,
		`cell R "Date Created: 10/14/2026" fill=false`,
		`cell L "Due Date: 11/13/2026" fill=false`,
		`cell C "Description" fill=true`,
		`cell C "Price" fill=true`,
		`cell C "Quantity" fill=true`,
		`cell C "Note" fill=true`,
		`cell C "Total" fill=true`,
		`cell R "Subtotal: USD 0.00" fill=false`,
		`cell R "Tax (10%): USD 0.00" fill=false`,
		`cell R "Total: USD 0.00" fill=false`,
	}
	if d := cmp.Diff(want, w.cells()); d != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", d)
	}
	if w.ops[0] != "page" {
		t.Errorf("first op = %q, want page", w.ops[0])
	}
	if !strings.Contains(strings.Join(w.ops, "\n"), "fill 242 242 242") {
		t.Error("header fill color not set")
	}
}

func TestDrawBoldTotal(t *testing.T) {
	doc := render.Render(sample(), render.Options{})
	var w recorder
	if err := Draw(context.Background(), doc, &w, Options{}); err != nil {
		t.Fatal(err)
	}
	n := len(w.ops)
	if w.ops[n-2] != `font "B" 12` || !strings.Contains(w.ops[n-1], `"Total: USD 100.00"`) {
		t.Errorf("last ops = %q, want bold total", w.ops[n-2:])
	}
}

func TestDrawImages(t *testing.T) {
	rec := invoice.Apply(sample(),
		invoice.SetLogo("logo"),
		invoice.SetSignature("missing", "Jobs"),
	)
	doc := render.Render(rec, render.Options{})

	var failed []string
	var w recorder
	err := Draw(context.Background(), doc, &w, Options{
		Images:       mapSource{"logo": []byte("png-bytes")},
		OnImageError: func(ref string, err error) { failed = append(failed, ref) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"missing"}, failed); d != "" {
		t.Errorf("failed images mismatch (-want +got):\n%s", d)
	}
	if w.images["logo"] != "png-bytes" {
		t.Errorf("registered images = %v", w.images)
	}
	var placed []string
	for _, op := range w.ops {
		if strings.HasPrefix(op, "image ") {
			placed = append(placed, op)
		}
	}
	if d := cmp.Diff([]string{"image logo 30 30 100 100"}, placed); d != "" {
		t.Errorf("placed images mismatch (-want +got):\n%s", d)
	}
}

func TestDrawRejectedImageFormat(t *testing.T) {
	doc := render.Render(invoice.Apply(sample(), invoice.SetLogo("logo")), render.Options{})
	var failed int
	w := recorder{badFmt: "PNG"}
	err := Draw(context.Background(), doc, &w, Options{
		Images:       mapSource{"logo": []byte("x")},
		OnImageError: func(string, error) { failed++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("image errors = %d, want 1", failed)
	}
}

func TestDrawCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var w recorder
	err := Draw(ctx, render.Render(sample(), render.Options{}), &w, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Draw() = %v, want context.Canceled", err)
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestBytesProducesPDF(t *testing.T) {
	rec := invoice.Apply(sample(),
		invoice.SetLogo("logo"),
		invoice.SetSignature("broken", ""),
		invoice.SetMarks("Bank: Example\nSWIFT: EXAMPLE1"),
		invoice.SetShipping(invoice.Some(12.5)),
	)
	doc := render.Render(rec, render.Options{})
	images := mapSource{"logo": testPNG(t), "broken": []byte("not a png")}

	var failed []string
	data, err := Bytes(context.Background(), doc, PDFOptions{CreationDate: issued}, Options{
		Images:       images,
		OnImageError: func(ref string, err error) { failed = append(failed, ref) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
	for _, text := range []string{"Invoice #0042", "Shipping: USD 12.50", "SWIFT: EXAMPLE1"} {
		if !bytes.Contains(data, []byte(text)) {
			t.Errorf("PDF does not contain %q", text)
		}
	}
	if d := cmp.Diff([]string{"broken"}, failed); d != "" {
		t.Errorf("failed images mismatch (-want +got):\n%s", d)
	}
}
