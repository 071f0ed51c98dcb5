// cmd/outline_test.go

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/render"
)

func TestWriteOutline(t *testing.T) {
	r := invoice.New(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC))
	r.InvoiceNumber = "12"
	r.Logo = "data:image/png;base64," + strings.Repeat("A", 100)
	doc := render.Render(r, render.Options{})

	var buf bytes.Buffer
	writeOutline(&buf, doc)
	out := buf.String()

	for _, want := range []string{
		"invoice-12 (A4, 595x842 pt)",
		"[logo] at 30.0,30.0 size 100.0x100.0",
		"  image data:image/png;base64,AAAA",
		"[header]",
		"  INVOICE",
		"  | Item 1 |",
		"[totals]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("outline lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("A", 100)) {
		t.Error("long image reference not shortened")
	}
}

func TestWriteDocumentJSON(t *testing.T) {
	doc := render.Render(invoice.New(time.Now()), render.Options{})

	var buf bytes.Buffer
	if err := writeDocumentJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	var back render.Document
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, &back, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}
