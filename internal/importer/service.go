// Package importer runs the resume import pipeline: accept raw text or an
// uploaded file, recover text from PDFs, submit it to the extractor, and
// replace the session's document with the parsed result. A failed import
// leaves the current document untouched.
package importer

import (
	"context"
	"errors"
	"strings"
	"time"

	"cv-builder-backend/internal/cv"
	"cv-builder-backend/internal/extraction"
	"cv-builder-backend/internal/importer/ocr"
	"cv-builder-backend/internal/importer/pdfpage"
	"cv-builder-backend/internal/shared/telemetry"
)

var (
	// ErrEmptyText means the submitted resume had no usable text.
	ErrEmptyText = errors.New("importer: empty resume text")

	// ErrUnsupportedType means the uploaded file is not txt or pdf.
	ErrUnsupportedType = errors.New("importer: unsupported file type")

	// ErrUnavailable means a pipeline stage has no collaborator wired in.
	ErrUnavailable = errors.New("importer: pipeline unavailable")
)

// Service drives the import pipeline.
type Service struct {
	cv        *cv.Service
	extractor extraction.Extractor
	pages     pdfpage.Source
	ocr       ocr.Engine
}

// NewService wires the pipeline stages together. Pages and ocrEngine may be
// nil when PDF support is not configured; text imports still work.
func NewService(cvSvc *cv.Service, extractor extraction.Extractor, pages pdfpage.Source, ocrEngine ocr.Engine) *Service {
	return &Service{cv: cvSvc, extractor: extractor, pages: pages, ocr: ocrEngine}
}

// ImportText parses resume text and replaces the session document. Empty
// input is rejected before the extractor is called.
func (s *Service) ImportText(ctx context.Context, sessionID, text string) (cv.Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return cv.Document{}, ErrEmptyText
	}

	start := time.Now()
	telemetry.Info("import.submitting", map[string]any{
		"session_id": sessionID,
		"chars":      len(trimmed),
	})

	doc, err := s.extractor.ParseResume(ctx, trimmed)
	if err != nil {
		telemetry.Error("import.failed", map[string]any{
			"session_id":  sessionID,
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return cv.Document{}, err
	}

	doc = extraction.Postprocess(doc)
	updated, err := s.cv.Replace(sessionID, doc)
	if err != nil {
		return cv.Document{}, err
	}

	telemetry.Info("import.succeeded", map[string]any{
		"session_id":  sessionID,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return updated, nil
}

// ImportFile recovers text from an uploaded file and runs ImportText on it.
// Plain text files pass through directly; PDFs go through page splitting
// and, for pages without a text layer, OCR.
func (s *Service) ImportFile(ctx context.Context, sessionID string, data []byte, contentType string) (cv.Document, error) {
	switch normalizeContentType(contentType) {
	case "text/plain":
		return s.ImportText(ctx, sessionID, string(data))
	case "application/pdf":
		text, err := s.pdfText(ctx, sessionID, data)
		if err != nil {
			return cv.Document{}, err
		}
		return s.ImportText(ctx, sessionID, text)
	default:
		return cv.Document{}, ErrUnsupportedType
	}
}

func (s *Service) pdfText(ctx context.Context, sessionID string, data []byte) (string, error) {
	if s.pages == nil || s.ocr == nil {
		return "", ErrUnavailable
	}

	telemetry.Info("import.extracting_text", map[string]any{
		"session_id": sessionID,
		"bytes":      len(data),
	})

	pages, err := s.pages.Pages(ctx, data)
	if err != nil {
		return "", err
	}
	return ocr.RecognizeAll(ctx, s.ocr, pages)
}

func normalizeContentType(raw string) string {
	ct := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
