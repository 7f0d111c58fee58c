package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/memovasquez/hydrant/internal/service"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
	"github.com/memovasquez/hydrant/pkg/response"
)

// ContextSessionKey is the gin context key storing the planner session id.
const ContextSessionKey = "plannerSession"

// Session protects planner routes by requiring a valid session token.
func Session(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing session token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := sessionService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, claims.SessionID)
		c.Next()
	}
}

// SessionID returns the session id placed on the context by Session.
func SessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}
