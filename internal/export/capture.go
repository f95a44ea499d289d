package export

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// logicalWidth is the CSS pixel width the document is laid out at.
	logicalWidth = 1200
	// RasterScale is the fixed oversampling factor applied when capturing
	// the document, for print legibility.
	RasterScale = 2.0

	captureTimeout = 60 * time.Second
)

// CaptureHTML rasterizes a complete HTML page with a headless browser at the
// fixed oversampling factor and returns the full-height screenshot.
func CaptureHTML(ctx context.Context, html string) (image.Image, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, captureTimeout)
	defer cancelRun()

	// Navigating a file URL avoids data-URI length limits for documents
	// carrying inlined images.
	tmpDir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return nil, &ExportError{Stage: "rasterization", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &ExportError{Stage: "rasterization", Cause: err}
	}

	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(logicalWidth, 10, chromedp.EmulateScale(RasterScale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, &ExportError{Stage: "rasterization", Cause: err}
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, &ExportError{Stage: "rasterization", Cause: err}
	}
	return img, nil
}
