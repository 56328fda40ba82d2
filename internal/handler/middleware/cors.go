package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"floorplan-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	// offline clients send these and read the conflict/backoff headers back
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", "Idempotency-Key", requestIDHeader}
	requiredExposeHeaders = []string{"Location", "Retry-After", requestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS configured",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders,
	)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
