package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hotel-booking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// RequestCounter tracks requests per client within a rolling window.
// Backed by redis so the limit holds across multiple API instances.
type RequestCounter interface {
	IncrementRequestCount(ctx context.Context, clientIP string, window time.Duration) (int64, error)
}

// RateLimitMiddleware rejects clients that exceed cfg.Limit requests per
// cfg.Window, keyed by client IP. A counter failure lets the request
// through; throttling is not worth an outage.
func RateLimitMiddleware(counter RequestCounter, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := counter.IncrementRequestCount(c.Request.Context(), c.ClientIP(), cfg.Window)
		if err != nil {
			slog.Warn("rate limit counter unavailable", "error", err.Error())
			c.Next()
			return
		}

		if count > int64(cfg.Limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
