package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
)

// CORS настраивает Cross-Origin Resource Sharing.
// В debug-режиме пустой список источников разрешает все, в release - ни одного.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	switch {
	case len(cfg.AllowedOrigins) > 0:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	case gin.Mode() == gin.DebugMode:
		corsConfig.AllowAllOrigins = true
	default:
		// cors.New паникует без источников, поэтому отклоняем их функцией
		log.Warn("CORS_ALLOWED_ORIGINS is empty, cross-origin requests are rejected")
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(corsConfig)
}
