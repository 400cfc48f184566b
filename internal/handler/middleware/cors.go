package middleware

import (
	"log/slog"

	"doglivebot/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware opens the ops API to the configured dashboards. With no
// origins configured the API is same-origin only and the middleware is a no-op.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Info("CORS disabled for ops API")
		return func(c *gin.Context) { c.Next() }
	}
	slog.Info("CORS enabled for ops API", "allow_origins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  append([]string{requestIDHeader}, cfg.AllowHeaders...),
		ExposeHeaders: append([]string{requestIDHeader}, cfg.ExposeHeaders...),
		MaxAge:        cfg.MaxAge,
	})
}
