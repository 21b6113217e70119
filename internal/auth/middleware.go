package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const internIDKey = "intern_id"

// CurrentInternMiddleware resolves the acting intern for each request. A
// valid bearer token selects its intern; anything else falls back to
// defaultID. It never rejects a request.
func CurrentInternMiddleware(provider Provider, defaultID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := defaultID
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if resolved, err := provider.ValidateToken(c.Request.Context(), token); err == nil {
				id = resolved
			}
		}
		c.Set(internIDKey, id)
		c.Next()
	}
}

// CurrentInternID returns the id set by CurrentInternMiddleware, or
// fallback when the middleware did not run.
func CurrentInternID(c *gin.Context, fallback int) int {
	if v, ok := c.Get(internIDKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return fallback
}
