package cv

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/shared/server/middleware"
	"cv-builder-backend/internal/shared/server/respond"
)

// Handler exposes document state and editing operations over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the CV handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the document endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cv", h.getDocument)
	rg.PUT("/cv", h.replaceDocument)
	rg.PATCH("/cv/field", h.setField)
	rg.POST("/cv/sections/:section/items", h.addItem)
	rg.DELETE("/cv/sections/:section/items/:index", h.removeItem)
	rg.POST("/cv/sections/:section/items/:index/skills", h.addSkill)
	rg.DELETE("/cv/sections/:section/items/:index/skills/:skillIndex", h.removeSkill)
}

type setFieldRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func (h *Handler) getDocument(c *gin.Context) {
	doc, err := h.svc.Current(middleware.SessionIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) replaceDocument(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must be a CV document", err.Error())
		return
	}
	updated, err := h.svc.Replace(middleware.SessionIDFromContext(c), doc)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) setField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Request body must contain path and value", err.Error())
		return
	}
	if req.Path == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "path is required", nil)
		return
	}
	doc, err := h.svc.SetField(middleware.SessionIDFromContext(c), req.Path, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) addItem(c *gin.Context) {
	section, err := ParseSection(c.Param("section"))
	if err != nil {
		h.fail(c, err)
		return
	}
	doc, err := h.svc.AddSectionItem(middleware.SessionIDFromContext(c), section)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) removeItem(c *gin.Context) {
	section, err := ParseSection(c.Param("section"))
	if err != nil {
		h.fail(c, err)
		return
	}
	index, err := parseIndex(c.Param("index"))
	if err != nil {
		h.fail(c, err)
		return
	}
	doc, err := h.svc.RemoveSectionItem(middleware.SessionIDFromContext(c), section, index)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) addSkill(c *gin.Context) {
	if err := requireSkillsSection(c.Param("section")); err != nil {
		h.fail(c, err)
		return
	}
	index, err := parseIndex(c.Param("index"))
	if err != nil {
		h.fail(c, err)
		return
	}
	doc, err := h.svc.AddSkillItem(middleware.SessionIDFromContext(c), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) removeSkill(c *gin.Context) {
	if err := requireSkillsSection(c.Param("section")); err != nil {
		h.fail(c, err)
		return
	}
	index, err := parseIndex(c.Param("index"))
	if err != nil {
		h.fail(c, err)
		return
	}
	skillIndex, err := parseIndex(c.Param("skillIndex"))
	if err != nil {
		h.fail(c, err)
		return
	}
	doc, err := h.svc.RemoveSkillItem(middleware.SessionIDFromContext(c), index, skillIndex)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, doc)
}

// Only the skills section nests items inside its entries.
func requireSkillsSection(raw string) error {
	section, err := ParseSection(raw)
	if err != nil {
		return err
	}
	if section != SectionSkills {
		return ErrUnknownSection
	}
	return nil
}

func parseIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, ErrInvalidInput
	}
	return idx, nil
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPathNotFound):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUnknownSection):
		respond.Error(c, http.StatusBadRequest, "unknown_section", err.Error(), nil)
	case errors.Is(err, ErrIndexOutOfRange):
		respond.Error(c, http.StatusNotFound, "index_out_of_range", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}
