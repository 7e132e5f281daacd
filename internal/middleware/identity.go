package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard-aggregator/pkg/response"
)

const userIDKey = "user_id"

// Identity requires a positive X-User-ID header and stores the parsed user
// id in the request context. The backend owns authentication; this layer
// only needs to know who is asking.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			m.l.Warnf(c.Request.Context(), "identity: invalid X-User-ID %q", raw)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the user id stored by Identity, or 0 when absent.
func UserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
