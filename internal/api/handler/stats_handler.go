package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// StatsHandler serves the derived read models.
type StatsHandler struct {
	stats  *service.StatsService
	logger *zap.Logger
}

// NewStatsHandler creates the stats handler.
func NewStatsHandler(stats *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, logger: logger}
}

// AdminStats handles GET /api/admin/stats.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	resp, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		h.logger.Error("computing admin stats", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// StudentStats handles GET /api/student/stats for the caller.
func (h *StatsHandler) StudentStats(c *gin.Context) {
	resp, err := h.stats.StudentStats(c.Request.Context(), callerID(c))
	if err != nil {
		h.logger.Error("computing student stats", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// StudentSchedule handles GET /api/student/schedule, the caller's
// enrollment-derived schedule.
func (h *StatsHandler) StudentSchedule(c *gin.Context) {
	items, err := h.stats.StudentSchedule(c.Request.Context(), callerID(c))
	if err != nil {
		h.logger.Error("deriving student schedule", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}
