package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// SectionHandler serves the admin-side section routes.
type SectionHandler struct {
	sections *service.SectionService
	logger   *zap.Logger
}

// NewSectionHandler creates the section handler.
func NewSectionHandler(sections *service.SectionService, logger *zap.Logger) *SectionHandler {
	return &SectionHandler{sections: sections, logger: logger}
}

// Create handles POST /api/admin/sections.
func (h *SectionHandler) Create(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		response.MissingFields(c, missing)
		return
	}

	section, err := h.sections.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, section)
}

// List handles GET /api/admin/sections.
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sections.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sections)
}

// Get handles GET /api/admin/sections/:id.
func (h *SectionHandler) Get(c *gin.Context) {
	section, err := h.sections.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, section)
}

// Members handles GET /api/admin/sections/:id/students.
func (h *SectionHandler) Members(c *gin.Context) {
	students, err := h.sections.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, students)
}

// Update handles PUT /api/admin/sections/:id.
func (h *SectionHandler) Update(c *gin.Context) {
	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	section, err := h.sections.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, section)
}

// Delete handles DELETE /api/admin/sections/:id. Member students are
// detached, not deleted.
func (h *SectionHandler) Delete(c *gin.Context) {
	if err := h.sections.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "section deleted")
}

// AssignStudents handles POST /api/admin/sections/:id/assign.
func (h *SectionHandler) AssignStudents(c *gin.Context) {
	var req dto.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MissingFields(c, []string{"studentIds"})
		return
	}

	if err := h.sections.AssignStudents(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "students assigned")
}

// RemoveStudent handles DELETE /api/admin/sections/:id/students/:studentId.
func (h *SectionHandler) RemoveStudent(c *gin.Context) {
	err := h.sections.RemoveStudent(c.Request.Context(), c.Param("id"), c.Param("studentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "student removed from section")
}

func (h *SectionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectionNotFound), errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDuplicateSectionName):
		response.Conflict(c, err.Error())
	default:
		h.logger.Error("section handler error", zap.Error(err))
		response.InternalError(c)
	}
}
