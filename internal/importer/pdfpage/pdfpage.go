// Package pdfpage splits an uploaded PDF into per-page units for text
// recovery. Pages with a usable text layer carry their text directly;
// pages without one are rasterized so OCR can read them.
package pdfpage

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// Scale is the raster scale for pages without a text layer, relative to the
// PDF's native 72 DPI.
const Scale = 1.5

const rasterDPI = 72 * Scale

// Page is one page of an uploaded document.
type Page struct {
	Number int
	Text   string
	Image  []byte
}

// Source extracts pages from raw PDF bytes.
type Source interface {
	Pages(ctx context.Context, data []byte) ([]Page, error)
}

// PDFSource reads the embedded text layer of each page and rasterizes
// pages whose text layer is empty or unreadable.
type PDFSource struct{}

// Pages returns one Page per PDF page, in ascending page order. A page with
// a text layer carries its text; a scanned page carries a PNG raster at
// Scale instead.
func (PDFSource) Pages(ctx context.Context, data []byte) ([]Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdfpage: open: %w", err)
	}

	total := reader.NumPage()
	if total == 0 {
		return nil, fmt.Errorf("pdfpage: document has no pages")
	}

	// The raster document is opened lazily; text-only PDFs never pay for it.
	var raster *fitz.Document
	defer func() {
		if raster != nil {
			raster.Close()
		}
	}()

	pages := make([]Page, 0, total)
	for n := 1; n <= total; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := Page{Number: n}
		p := reader.Page(n)
		if !p.V.IsNull() {
			if text, err := p.GetPlainText(nil); err == nil {
				page.Text = strings.TrimSpace(text)
			}
		}
		if page.Text == "" {
			if raster == nil {
				raster, err = fitz.NewFromMemory(data)
				if err != nil {
					return nil, fmt.Errorf("pdfpage: open raster: %w", err)
				}
			}
			image, err := rasterize(raster, n)
			if err != nil {
				return nil, err
			}
			page.Image = image
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func rasterize(doc *fitz.Document, number int) ([]byte, error) {
	img, err := doc.ImageDPI(number-1, rasterDPI)
	if err != nil {
		return nil, fmt.Errorf("pdfpage: rasterize page %d: %w", number, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("pdfpage: encode page %d: %w", number, err)
	}
	return buf.Bytes(), nil
}
