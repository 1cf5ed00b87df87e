package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/response"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxToken  = "session_token"
)

// SessionAuth validates the bearer token against the session store and
// injects the caller's identity into the request context. Missing, unknown
// and expired tokens are all 401.
func SessionAuth(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c, "session invalid or expired")
			c.Abort()
			return
		}

		c.Set(CtxUserID, session.UserID)
		c.Set(CtxRole, session.Role)
		c.Set(CtxToken, session.Token)
		c.Next()
	}
}

// RoleAuth rejects authenticated callers whose role is not in the allow
// list. Must run after SessionAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "insufficient permissions")
		c.Abort()
	}
}
