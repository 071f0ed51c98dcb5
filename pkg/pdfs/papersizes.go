// pkg/pdfs/papersizes.go

package pdfs

// PaperSize is a page size in points (1" = 72pt).
type PaperSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}          // 8.5" x 11"
	A4Size     = PaperSize{Name: "A4", Width: 595.27559, Height: 841.88976} // 210mm x 297mm
)
