package middleware

import (
	"log/slog"
	"slices"

	"resource-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers a browser planner reads off our responses.
var exposedHeaders = []string{"Location", "Content-Disposition", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, RequestIDHeader) {
		allowHeaders = append(allowHeaders, RequestIDHeader)
	}

	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
