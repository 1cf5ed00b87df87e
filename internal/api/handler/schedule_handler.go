package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// ScheduleHandler serves the admin-side master schedule routes.
type ScheduleHandler struct {
	schedule *service.ScheduleService
	logger   *zap.Logger
}

// NewScheduleHandler creates the schedule handler.
func NewScheduleHandler(schedule *service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, logger: logger}
}

// Create handles POST /api/admin/schedule.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		response.MissingFields(c, missing)
		return
	}

	item, err := h.schedule.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, item)
}

// List handles GET /api/admin/schedule.
func (h *ScheduleHandler) List(c *gin.Context) {
	items, err := h.schedule.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, items)
}

// Get handles GET /api/admin/schedule/:id.
func (h *ScheduleHandler) Get(c *gin.Context) {
	item, err := h.schedule.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Update handles PUT /api/admin/schedule/:id.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.schedule.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, item)
}

// Delete handles DELETE /api/admin/schedule/:id.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedule.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "schedule item deleted")
}

func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleItemNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("schedule handler error", zap.Error(err))
		response.InternalError(c)
	}
}
