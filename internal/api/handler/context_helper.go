package handler

import (
	"github.com/gin-gonic/gin"

	"campus-portal/backend/internal/api/middleware"
)

// Identity values are injected by the session middleware; on protected
// routes they are always present.

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

func callerToken(c *gin.Context) string {
	return c.GetString(middleware.CtxToken)
}
