package export

import (
	"bytes"
	"context"
	"image"

	"github.com/Naiitikk/cv-creator/internal/document"
)

// CaptureFunc rasterizes an HTML page into a full-height image.
type CaptureFunc func(ctx context.Context, html string) (image.Image, error)

// Exporter turns a CV document into a paginated image-based PDF. The capture
// step is injectable so tests can run without a browser.
type Exporter struct {
	capture CaptureFunc
}

// NewExporter returns an Exporter backed by the headless-browser capture.
func NewExporter() *Exporter {
	return &Exporter{capture: CaptureHTML}
}

// NewExporterWithCapture returns an Exporter using the given capture
// function.
func NewExporterWithCapture(capture CaptureFunc) *Exporter {
	return &Exporter{capture: capture}
}

// Export renders the document, rasterizes it, slices the raster into A4
// pages, and returns the assembled PDF along with its download filename.
func (e *Exporter) Export(ctx context.Context, doc *document.Document) ([]byte, string, error) {
	html, err := doc.RenderHTML()
	if err != nil {
		return nil, "", &ExportError{Stage: "rendering", Cause: err}
	}

	raster, err := e.capture(ctx, html)
	if err != nil {
		return nil, "", err
	}

	var out bytes.Buffer
	if err := AssemblePDF(Paginate(raster), &out); err != nil {
		return nil, "", err
	}

	return out.Bytes(), Filename(doc.FirstName, doc.LastName), nil
}
