// Package bootstrap wires configuration into the full application graph.
package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/cv"
	"cv-builder-backend/internal/export"
	"cv-builder-backend/internal/extraction"
	"cv-builder-backend/internal/importer"
	"cv-builder-backend/internal/importer/ocr"
	"cv-builder-backend/internal/importer/pdfpage"
	"cv-builder-backend/internal/logos"
	"cv-builder-backend/internal/shared/config"
	"cv-builder-backend/internal/shared/server"
	"cv-builder-backend/internal/shared/telemetry"
)

// App is the assembled application.
type App struct {
	Router  *gin.Engine
	cleanup []func() error
}

// Close releases resources held by the app.
func (a *App) Close() {
	for _, fn := range a.cleanup {
		_ = fn()
	}
}

// Build assembles all services and handlers from config. Without an LLM API
// key the import pipeline runs against a placeholder that reports the
// missing configuration; everything else works normally.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	repo := cv.NewMemoryRepo()
	cvSvc := cv.NewService(repo)

	var extractor extraction.Extractor
	var ocrEngine ocr.Engine
	if cfg.GeminiAPIKey != "" {
		gemini, err := extraction.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		app.cleanup = append(app.cleanup, gemini.Close)
		extractor = gemini
		ocrEngine = gemini
	} else {
		telemetry.Info("bootstrap.llm_placeholder", map[string]any{
			"reason": "GEMINI_API_KEY not set",
		})
		placeholder := extraction.Placeholder{}
		extractor = placeholder
		ocrEngine = placeholder
	}

	importSvc := importer.NewService(cvSvc, extractor, pdfpage.PDFSource{}, ocrEngine)
	exportSvc := export.NewService(cvSvc, export.ChromeRenderer{ExecPath: cfg.ChromePath})
	finder := logos.NewFinder(cfg.LogoBaseURL)

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			cv.NewHandler(cvSvc),
			logos.NewHandler(cvSvc, finder),
			importer.NewHandler(importSvc),
			export.NewHandler(exportSvc),
		},
	})

	return app, nil
}
