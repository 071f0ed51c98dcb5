// cmd/outline.go

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/invoice-generator/pkg/render"
)

func writeDocumentJSON(w io.Writer, doc *render.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// writeOutline prints one block per region with its position and text.
func writeOutline(w io.Writer, doc *render.Document) {
	fmt.Fprintf(w, "%s (%s, %.0fx%.0f pt)\n", doc.Title, doc.Page.Size.Name, doc.Page.Size.Width, doc.Page.Size.Height)
	for _, el := range doc.Page.Elements {
		fmt.Fprintf(w, "\n[%s] at %.1f,%.1f size %.1fx%.1f\n", el.Region, el.Box.X, el.Box.Y, el.Box.W, el.Box.H)
		if el.Image != nil {
			fmt.Fprintf(w, "  image %s\n", shorten(el.Image.Ref))
		}
		if el.Table != nil {
			for _, row := range append([]render.Row{el.Table.Header}, el.Table.Rows...) {
				texts := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					texts[i] = c.Text
				}
				fmt.Fprintf(w, "  | %s |\n", strings.Join(texts, " | "))
			}
			continue
		}
		for _, l := range el.Lines {
			fmt.Fprintf(w, "  %s\n", l.Text)
		}
	}
}

func shorten(ref string) string {
	if len(ref) > 60 {
		return ref[:57] + "..."
	}
	return ref
}
