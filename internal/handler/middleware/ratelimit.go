package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/handler/response"
)

// RequestRateLimiter — ограничитель частоты, реализуется redis_rate.Limiter.
type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit ограничивает число запросов с одного IP до perMinute в минуту.
// При недоступности Redis запрос пропускается.
func RateLimit(limiter RequestRateLimiter, keyPrefix string, perMinute int, limited prometheus.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyPrefix + ":" + c.ClientIP()
		res, err := limiter.Allow(c.Request.Context(), key, redis_rate.PerMinute(perMinute))
		if err != nil {
			log.WithError(err).WithField("key", key).Error("rate limiter unavailable, request allowed")
			c.Next()
			return
		}

		if res.Allowed > 0 {
			c.Next()
			return
		}

		if limited != nil {
			limited.Inc()
		}
		log.WithField("key", key).Warn("request rate limited")
		c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
		response.Error(c, http.StatusTooManyRequests, "too_many_requests", "Слишком много попыток, попробуйте позже", nil)
	}
}
