package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/metrics"
)

// Metrics считает запросы, их длительность и количество запросов в обработке.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.GaugeRequests.Inc()
		defer m.GaugeRequests.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.CounterRequests.WithLabelValues(c.Request.Method, status).Inc()
		m.HistogramRequestDuration.
			WithLabelValues(route, c.Request.Method, status).
			Observe(time.Since(start).Seconds())
	}
}
