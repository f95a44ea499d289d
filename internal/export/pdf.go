package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// AssemblePDF writes a single-column A4 PDF with one page per raster band.
// Each band is scaled to the full page width; a short final band leaves the
// rest of its page blank.
func AssemblePDF(bands []image.Image, w io.Writer) error {
	if len(bands) == 0 {
		return &ExportError{Stage: "assembly", Cause: fmt.Errorf("no pages to assemble")}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	for i, band := range bands {
		var buf bytes.Buffer
		if err := png.Encode(&buf, band); err != nil {
			return &ExportError{Stage: "assembly", Cause: err}
		}

		bounds := band.Bounds()
		heightMM := float64(bounds.Dy()) * PageWidthMM / float64(bounds.Dx())

		name := fmt.Sprintf("band-%d", i)
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.ImageOptions(name, 0, 0, PageWidthMM, heightMM, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return &ExportError{Stage: "assembly", Cause: err}
	}
	return nil
}

// Filename derives the download filename from the person's name:
// "<first>_<last>_CV.pdf", with inner whitespace collapsed to underscores.
func Filename(firstName, lastName string) string {
	clean := func(s string) string {
		return strings.Join(strings.Fields(s), "_")
	}
	return fmt.Sprintf("%s_%s_CV.pdf", clean(firstName), clean(lastName))
}
