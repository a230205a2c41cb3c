// Package export turns the session's document into a downloadable PDF by
// rendering the HTML template and printing it through headless Chrome.
package export

import (
	"context"
	"time"

	"cv-builder-backend/internal/cv"
	"cv-builder-backend/internal/render"
	"cv-builder-backend/internal/shared/telemetry"
	"cv-builder-backend/internal/shared/util"
)

// Result is a finished export ready to stream to the client.
type Result struct {
	FileName string
	PDF      []byte
}

// Service coordinates rendering and printing.
type Service struct {
	cv       *cv.Service
	renderer Renderer
}

// NewService wires the export service. A nil renderer disables export.
func NewService(cvSvc *cv.Service, renderer Renderer) *Service {
	return &Service{cv: cvSvc, renderer: renderer}
}

// Export renders the session's document with the named template and prints
// it. Transient logo-loading flags are cleared first so they never show in
// the output.
func (s *Service) Export(ctx context.Context, sessionID, templateName string) (Result, error) {
	if s.renderer == nil {
		return Result{}, ErrRendererUnavailable
	}

	doc, err := s.cv.Current(sessionID)
	if err != nil {
		return Result{}, err
	}
	for i := range doc.Experience {
		doc.Experience[i].IsLogoLoading = false
	}

	html, err := render.HTML(doc, templateName)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		telemetry.Error("export.failed", map[string]any{
			"session_id": sessionID,
			"template":   templateName,
			"error":      err.Error(),
		})
		return Result{}, err
	}

	telemetry.Info("export.succeeded", map[string]any{
		"session_id":  sessionID,
		"template":    templateName,
		"bytes":       len(pdf),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return Result{
		FileName: util.ExportFileName(doc.Name),
		PDF:      pdf,
	}, nil
}
