package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	redisc "github.com/wahidu1/portfolio-core/internal/pkg/redis"
	"github.com/wahidu1/portfolio-core/internal/pkg/response"
)

const (
	rateLimitPrefix = "pf:rate_limit:"
	rateLimitMax    = 50
	rateLimitWindow = time.Second
)

// RateLimit caps each client IP at rateLimitMax requests per second using a
// Redis counter with a sliding expiry.
func RateLimit(rc *redisc.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s%s", rateLimitPrefix, c.ClientIP())
		ctx := c.Request.Context()

		count, err := rc.Raw().Incr(ctx, key).Result()
		if err != nil {
			// Redis unavailable: let the request through rather than
			// failing the whole API.
			c.Next()
			return
		}
		if count == 1 {
			rc.Raw().PExpire(ctx, key, rateLimitWindow)
		}
		if count > rateLimitMax {
			response.TooManyRequests(c, "Too many requests, please slow down")
			return
		}
		c.Next()
	}
}
