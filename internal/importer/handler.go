package importer

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/extraction"
	"cv-builder-backend/internal/shared/server/middleware"
	"cv-builder-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20

// extractionFailedMessage is shown to users for any model-side parse failure.
const extractionFailedMessage = "Failed to parse the resume. Please check the format and try again."

// Handler accepts resume imports as raw text or file uploads.
type Handler struct {
	svc *Service
}

// NewHandler creates the import handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the import endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import", h.importResume)
}

type importTextRequest struct {
	Text string `json:"text"`
}

// importResume handles both JSON text submissions and multipart uploads.
// Multipart requests carry the resume in a "file" part; txt and pdf are the
// only accepted types.
func (h *Handler) importResume(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	if isMultipart(c) {
		h.importUpload(c, sessionID)
		return
	}

	var req importTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must contain text", err.Error())
		return
	}

	doc, err := h.svc.ImportText(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) importUpload(c *gin.Context, sessionID string) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Upload must contain a file part", err.Error())
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File exceeds the 10 MB upload limit", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Could not read uploaded file", err.Error())
		return
	}
	if len(data) > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File exceeds the 10 MB upload limit", nil)
		return
	}

	doc, err := h.svc.ImportFile(c.Request.Context(), sessionID, data, header.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyText):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume text is empty", nil)
	case errors.Is(err, ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only txt and pdf files are supported", nil)
	case errors.Is(err, ErrUnavailable):
		respond.Error(c, http.StatusBadRequest, "validation_error", "PDF import is not available", nil)
	case errors.Is(err, extraction.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_not_configured", "Resume import requires an LLM API key", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "extraction_failed", extractionFailedMessage, err.Error())
	}
}

func isMultipart(c *gin.Context) bool {
	ct := c.GetHeader("Content-Type")
	return len(ct) >= 19 && ct[:19] == "multipart/form-data"
}
