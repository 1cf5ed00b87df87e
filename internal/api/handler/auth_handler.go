package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// AuthHandler serves login, logout and self-service account routes.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MissingFields(c, []string{"username", "password"})
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// Logout handles POST /api/auth/logout. Ending an already-ended session still
// succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), callerToken(c)); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "logged out")
}

// ChangePassword handles POST /api/student/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "currentPassword and newPassword are required; newPassword must be at least 6 characters")
		return
	}

	if err := h.auth.ChangeStudentPassword(c.Request.Context(), callerID(c), &req); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "password updated")
}

// UpdateStudentAccount handles PUT /api/student/account.
func (h *AuthHandler) UpdateStudentAccount(c *gin.Context) {
	var req dto.UpdateStudentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "currentPassword is required; newPassword must be at least 6 characters")
		return
	}

	resp, err := h.auth.UpdateStudentAccount(c.Request.Context(), callerID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateAdminAccount handles PUT /api/admin/account.
func (h *AuthHandler) UpdateAdminAccount(c *gin.Context) {
	var req dto.UpdateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "currentPassword is required; newPassword must be at least 6 characters")
		return
	}

	resp, err := h.auth.UpdateAdminAccount(c.Request.Context(), callerID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrAdminNotFound):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("auth handler error", zap.Error(err))
		response.InternalError(c)
	}
}
