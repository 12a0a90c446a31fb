package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/handler/response"
)

// Recovery перехватывает панику в handler'е, логирует её и отвечает 500.
// panicCounter может быть nil.
func Recovery(panicCounter prometheus.Counter) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		if panicCounter != nil {
			panicCounter.Inc()
		}

		log.WithFields(log.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"panic":     fmt.Sprintf("%v", recovered),
		}).Error("panic while handling request")

		// В production режиме не показываем детали ошибки
		var details interface{}
		if gin.Mode() == gin.DebugMode {
			details = fmt.Sprintf("%v", recovered)
		}
		response.Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", details)
	})
}
