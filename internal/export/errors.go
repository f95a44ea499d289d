// Package export renders a CV document to a paginated image-based A4 PDF.
//
// The pipeline captures the rendered HTML as a raster image at a fixed
// oversampling factor for legibility, slices the raster into page-height
// bands, and assembles one PDF page per band. Export failures are surfaced to
// the caller; nothing is swallowed.
package export

import "fmt"

// ExportError indicates rasterization or file assembly failed.
type ExportError struct {
	Stage string
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed during %s: %v", e.Stage, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
