package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// AnnouncementHandler serves announcement routes. Listing is readable by
// any authenticated caller; writes are admin only.
type AnnouncementHandler struct {
	announcements *service.AnnouncementService
	logger        *zap.Logger
}

// NewAnnouncementHandler creates the announcement handler.
func NewAnnouncementHandler(announcements *service.AnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, logger: logger}
}

// Create handles POST /api/admin/announcements.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		response.MissingFields(c, missing)
		return
	}

	a, err := h.announcements.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, a)
}

// List handles GET /api/admin/announcements (public) and
// GET /api/student/announcements.
func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.announcements.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, list)
}

// Get handles GET /api/admin/announcements/:id (public).
func (h *AnnouncementHandler) Get(c *gin.Context) {
	a, err := h.announcements.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, a)
}

// Update handles PUT /api/admin/announcements/:id.
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.announcements.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, a)
}

// Delete handles DELETE /api/admin/announcements/:id.
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcements.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "announcement deleted")
}

func (h *AnnouncementHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("announcement handler error", zap.Error(err))
		response.InternalError(c)
	}
}
