// Package ocr recovers text from document pages, fanning work out across a
// bounded worker pool. Pages that already carry text skip the engine.
package ocr

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"cv-builder-backend/internal/importer/pdfpage"
)

// Engine recognizes text in a single page image.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// RecognizeAll resolves text for every page and joins the results in page
// order with blank lines between pages. The pool size is the smaller of
// GOMAXPROCS-ish CPU count and the page count; a single failing page fails
// the whole batch.
func RecognizeAll(ctx context.Context, engine Engine, pages []pdfpage.Page) (string, error) {
	if len(pages) == 0 {
		return "", nil
	}

	workers := runtime.NumCPU()
	if workers > len(pages) {
		workers = len(pages)
	}

	texts := make([]string, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, page := range pages {
		i, page := i, page
		if page.Text != "" {
			texts[i] = page.Text
			continue
		}
		g.Go(func() error {
			text, err := engine.Recognize(ctx, page.Image)
			if err != nil {
				return err
			}
			texts[i] = strings.TrimSpace(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(texts, "\n\n"), nil
}
