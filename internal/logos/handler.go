package logos

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/cv"
	"cv-builder-backend/internal/shared/server/middleware"
	"cv-builder-backend/internal/shared/server/respond"
	"cv-builder-backend/internal/shared/telemetry"
)

// Handler triggers logo lookups for experience entries.
type Handler struct {
	cv     *cv.Service
	finder *Finder
}

// NewHandler creates the logo handler.
func NewHandler(cvSvc *cv.Service, finder *Finder) *Handler {
	return &Handler{cv: cvSvc, finder: finder}
}

// RegisterRoutes mounts the logo lookup endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cv/experience/:index/logo", h.fetchLogo)
}

// fetchLogo resolves a logo for the experience entry's company and stores
// the result. An entry with no company name is returned unchanged. The
// loading flag is set while the lookup runs so concurrent readers of the
// document can surface a spinner, and always cleared afterwards.
func (h *Handler) fetchLogo(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	doc, err := h.cv.Current(sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}

	indexParam := c.Param("index")
	var index int
	if _, err := fmt.Sscanf(indexParam, "%d", &index); err != nil || index < 0 || index >= len(doc.Experience) {
		respond.Error(c, http.StatusNotFound, "index_out_of_range", "No experience entry at index "+indexParam, nil)
		return
	}

	company := doc.Experience[index].Company
	if company == "" {
		respond.OK(c, doc)
		return
	}

	loadingPath := fmt.Sprintf("experience.%d.isLogoLoading", index)
	logoPath := fmt.Sprintf("experience.%d.logoUrl", index)

	if _, err := h.cv.SetField(sessionID, loadingPath, true); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}

	logoURL := h.finder.FindLogo(c.Request.Context(), company)
	telemetry.Info("logo.lookup", map[string]any{
		"session_id": sessionID,
		"company":    company,
		"domain":     GuessDomain(company),
		"found":      logoURL != "",
	})

	if _, err := h.cv.SetField(sessionID, logoPath, logoURL); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}
	updated, err := h.cv.SetField(sessionID, loadingPath, false)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}

	respond.OK(c, updated)
}
