package app

import (
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

// wireRouter builds the HTTP server. metrics is nil when METRICS_ENABLED is off.
func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	rc := http.RouterConfig{
		Log:                 log,
		Metrics:             metrics,
		CORSOrigins:         cfg.CORSOrigins,
		AuthMiddleware:      middleware.Auth,
		HealthHandler:       handlers.Health,
		LearningDataHandler: handlers.LearningData,
		ProgressHandler:     handlers.Progress,
		CatalogHandler:      handlers.Catalog,
		RealtimeHandler:     handlers.Realtime,
	}
	if cfg.Otel.Enabled {
		rc.ServiceName = cfg.Otel.ServiceName
	}
	return http.NewServer(rc)
}
