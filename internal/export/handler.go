package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/render"
	"cv-builder-backend/internal/shared/server/middleware"
	"cv-builder-backend/internal/shared/server/respond"
)

// Handler streams exported PDFs.
type Handler struct {
	svc *Service
}

// NewHandler creates the export handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the export endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.exportPDF)
}

type exportRequest struct {
	Template string `json:"template"`
}

func (h *Handler) exportPDF(c *gin.Context) {
	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must be JSON", err.Error())
			return
		}
	}

	result, err := h.svc.Export(c.Request.Context(), middleware.SessionIDFromContext(c), req.Template)
	if err != nil {
		switch {
		case errors.Is(err, ErrRendererUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "PDF export is not available", nil)
		case errors.Is(err, render.ErrUnknownTemplate):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "export_failed", "Could not generate the PDF", err.Error())
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
