package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// GradeHandler serves the admin-side grade routes and the student's own
// grade list.
type GradeHandler struct {
	grades *service.GradeService
	logger *zap.Logger
}

// NewGradeHandler creates the grade handler.
func NewGradeHandler(grades *service.GradeService, logger *zap.Logger) *GradeHandler {
	return &GradeHandler{grades: grades, logger: logger}
}

// Create handles POST /api/admin/grades.
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		response.MissingFields(c, missing)
		return
	}

	grade, err := h.grades.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, grade)
}

// List handles GET /api/admin/grades. A studentId query narrows the result
// to one student.
func (h *GradeHandler) List(c *gin.Context) {
	if studentID := c.Query("studentId"); studentID != "" {
		grades, err := h.grades.ListByStudent(c.Request.Context(), studentID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.OK(c, grades)
		return
	}

	grades, err := h.grades.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, grades)
}

// Get handles GET /api/admin/grades/:id.
func (h *GradeHandler) Get(c *gin.Context) {
	grade, err := h.grades.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, grade)
}

// Update handles PUT /api/admin/grades/:id.
func (h *GradeHandler) Update(c *gin.Context) {
	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	grade, err := h.grades.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, grade)
}

// Delete handles DELETE /api/admin/grades/:id.
func (h *GradeHandler) Delete(c *gin.Context) {
	if err := h.grades.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "grade deleted")
}

// MyGrades handles GET /api/student/grades, returning the caller's own
// records.
func (h *GradeHandler) MyGrades(c *gin.Context) {
	grades, err := h.grades.ListByStudent(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, grades)
}

func (h *GradeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGradeNotFound), errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidGradeValue):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("grade handler error", zap.Error(err))
		response.InternalError(c)
	}
}
