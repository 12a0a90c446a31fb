package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger логирует каждый запрос структурированной записью logrus.
// 5xx пишутся на уровне error, 4xx на warn, остальное на info.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})
		if id, ok := UserID(c); ok {
			entry = entry.WithField("user_id", id.String())
		}
		if name, ok := Username(c); ok {
			entry = entry.WithField("username", name)
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			entry = entry.WithField("errors", errs)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request served")
		case status >= 400:
			entry.Warn("request served")
		default:
			entry.Info("request served")
		}
	}
}
