package middlewares

import (
	"net/http"
	"strings"

	"hearthly-api/internal/auth"
	"hearthly-api/internal/logs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	bearerPrefix = "Bearer "
	ctxUserIDKey = "userID"
)

// AuthMiddleware resolves the Authorization bearer token to an identity. The
// request is rejected before the handler runs when the token is missing or
// the verifier refuses it.
func AuthMiddleware(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			logs.FromContext(c.Request.Context()).Info("request unauthorized", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ctxUserIDKey, id.UserID)

		l := logs.FromContext(c.Request.Context()).With(zap.String("user_id", id.UserID))
		c.Request = c.Request.WithContext(logs.WithLogger(c.Request.Context(), l))
		c.Next()
	}
}

// UserID returns the user id set by AuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ctxUserIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
