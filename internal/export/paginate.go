package export

import (
	"image"
)

// A4 dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// PageHeightPx returns the pixel height of one A4 page for a raster of the
// given width, preserving the paper aspect ratio.
func PageHeightPx(width int) int {
	return int(float64(width)*PageHeightMM/PageWidthMM + 0.5)
}

// PageCount returns the number of A4 pages needed for a raster of the given
// dimensions: the ceiling of content height over page height. Content
// spanning 2.3 logical pages yields 3; exact multiples do not produce a
// trailing blank page.
func PageCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	pageHeight := PageHeightPx(width)
	return (height + pageHeight - 1) / pageHeight
}

// subImager is implemented by the stdlib image types produced by PNG
// decoding.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Paginate slices a full-document raster into page-height bands, top to
// bottom. The final band may be shorter than a full page; it is rendered at
// the top of its page with the remainder left blank.
func Paginate(img image.Image) []image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pages := PageCount(width, height)
	if pages == 0 {
		return nil
	}

	pageHeight := PageHeightPx(width)
	bands := make([]image.Image, 0, pages)
	for i := 0; i < pages; i++ {
		top := bounds.Min.Y + i*pageHeight
		bottom := min(top+pageHeight, bounds.Max.Y)
		rect := image.Rect(bounds.Min.X, top, bounds.Max.X, bottom)

		if sub, ok := img.(subImager); ok {
			bands = append(bands, sub.SubImage(rect))
			continue
		}
		bands = append(bands, cropFallback(img, rect))
	}
	return bands
}

// cropFallback copies a band out of an image that does not support SubImage.
func cropFallback(img image.Image, rect image.Rectangle) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			out.Set(x-rect.Min.X, y-rect.Min.Y, img.At(x, y))
		}
	}
	return out
}
