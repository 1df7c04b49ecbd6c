package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/services"
)

// RateLimitMiddleware bounds how fast a single user can fire wager
// operations. Limits follow the route family, not the exact path.
func RateLimitMiddleware(limiter services.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}

		path := c.Request.URL.Path

		var action string
		var limit int
		window := time.Minute

		switch {
		case strings.Contains(path, "/reveal"), strings.Contains(path, "/next"):
			action, limit = "reveal", services.RateLimitReveal
		case strings.Contains(path, "/cashout"):
			action, limit = "cashout", services.RateLimitCashout
		case strings.Contains(path, "/bet"), strings.Contains(path, "/start"):
			action, limit = "bet", services.RateLimitBets
		default:
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), userID, action, limit, window)
		if err != nil || !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       "rate_limited",
				"message":     "Too many requests. Please wait.",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
