package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the download routes.
type ExportHandler struct {
	export *service.ExportService
	logger *zap.Logger
}

// NewExportHandler creates the export handler.
func NewExportHandler(export *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{export: export, logger: logger}
}

// Students handles GET /api/admin/export/students.
func (h *ExportHandler) Students(c *gin.Context) {
	data, err := h.export.ExportStudents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Grades handles GET /api/admin/export/grades?studentId=.
func (h *ExportHandler) Grades(c *gin.Context) {
	studentID := c.Query("studentId")
	if studentID == "" {
		response.MissingFields(c, []string{"studentId"})
		return
	}

	data, err := h.export.ExportGrades(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="grades.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ScheduleICS handles GET /api/student/schedule.ics, the caller's derived
// schedule as an iCalendar feed.
func (h *ExportHandler) ScheduleICS(c *gin.Context) {
	feed, err := h.export.StudentScheduleCalendar(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("export handler error", zap.Error(err))
		response.InternalError(c)
	}
}
