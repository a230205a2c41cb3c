package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrRendererUnavailable means no PDF renderer is configured.
var ErrRendererUnavailable = errors.New("export: pdf renderer unavailable")

// Renderer prints an HTML page to PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// A4 paper in inches, portrait.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// Page margins in centimeters: top, left, bottom, right.
const (
	marginTopCm    = 0.5
	marginLeftCm   = 0.2
	marginBottomCm = 0.5
	marginRightCm  = 0.2
)

const cmPerInch = 2.54

// ChromeRenderer prints through headless Chrome. ExecPath may point at a
// specific Chrome binary; when empty, chromedp finds one on PATH.
type ChromeRenderer struct {
	ExecPath string
	Timeout  time.Duration
}

// RenderPDF writes the HTML to a temp file, loads it in headless Chrome and
// prints it to A4 portrait with print backgrounds enabled.
func (r ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "cv-export-*")
	if err != nil {
		return nil, fmt.Errorf("export: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("export: write html: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginTopCm / cmPerInch).
				WithMarginBottom(marginBottomCm / cmPerInch).
				WithMarginLeft(marginLeftCm / cmPerInch).
				WithMarginRight(marginRightCm / cmPerInch).
				WithScale(1).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("export: print: %w", err)
	}
	return pdf, nil
}
