// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// generateImage rasterizes an SVG frame with headless Chrome and writes it as
// PNG or JPEG. Tile images are fetched by the browser, so ctx should carry a
// deadline.
func generateImage(ctx context.Context, svgString string, format string, outputWriter io.Writer) error {
	// Load the SVG straight from a data URI, no temp file needed
	svgBase64 := base64.StdEncoding.EncodeToString([]byte(svgString))
	dataURI := "data:image/svg+xml;base64," + svgBase64
	log.Debug("Created data URI for SVG.")

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	screenshotReader := bytes.NewReader(screenshotBuf)
	switch format {
	case "png":
		// Screenshot is already PNG, just copy it
		if _, err := io.Copy(outputWriter, screenshotReader); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(screenshotReader)
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		if err := jpeg.Encode(outputWriter, img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format '%s' with chromedp", format)
	}

	log.Printf("Successfully encoded %s image using chromedp.", strings.ToUpper(format))
	return nil
}
