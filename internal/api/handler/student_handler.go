package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// StudentHandler serves the admin-side student roster routes and the
// student's own profile.
type StudentHandler struct {
	students *service.StudentService
	logger   *zap.Logger
}

// NewStudentHandler creates the student handler.
func NewStudentHandler(students *service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{students: students, logger: logger}
}

// Create handles POST /api/admin/students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		response.MissingFields(c, missing)
		return
	}

	resp, err := h.students.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, resp)
}

// List handles GET /api/admin/students.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, students)
}

// Get handles GET /api/admin/students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
	resp, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update handles PUT /api/admin/students/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.students.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// Delete handles DELETE /api/admin/students/:id.
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "student deleted")
}

// Profile handles GET /api/student/profile, returning the caller's own
// record.
func (h *StudentHandler) Profile(c *gin.Context) {
	resp, err := h.students.Get(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *StudentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDuplicateStudentNumber):
		response.Conflict(c, err.Error())
	default:
		h.logger.Error("student handler error", zap.Error(err))
		response.InternalError(c)
	}
}
