package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/ratelimit"
)

// unlimitedPaths are probed by infrastructure and never throttled
var unlimitedPaths = []string{"/health", "/metrics"}

// RateLimit throttles requests per client IP and answers 429 with Retry-After when denied
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || !limiter.Enabled() || isUnlimited(c.Request.URL.Path) {
			c.Next()
			return
		}

		allowed, wait := limiter.Allow(c.ClientIP())
		if allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(wait.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}

		logger.DebugCtx(c.Request.Context(), "Rate limit exceeded",
			zap.String("requestID", GetRequestID(c)),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("wait", wait),
		)

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": gin.H{
				"code":    "rate_limited",
				"message": "Too many requests",
			},
		})
	}
}

func isUnlimited(path string) bool {
	for _, p := range unlimitedPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
