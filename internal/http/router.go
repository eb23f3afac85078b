package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/handlers"
	httpMW "github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/middleware"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORSOrigins []string
	// ServiceName enables otelgin spans when set.
	ServiceName string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler       *httpH.HealthHandler
	LearningDataHandler *httpH.LearningDataHandler
	ProgressHandler     *httpH.ProgressHandler
	CatalogHandler      *httpH.CatalogHandler
	RealtimeHandler     *httpH.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireUser())
	}
	{
		if cfg.LearningDataHandler != nil {
			api.GET("/learning-data", cfg.LearningDataHandler.GetLearningData)
		}

		if cfg.ProgressHandler != nil {
			api.PUT("/progress/:contentItemId", cfg.ProgressHandler.UpdateProgress)
			api.GET("/progress/:contentItemId", cfg.ProgressHandler.GetProgress)
			api.GET("/topics/:id/progress", cfg.ProgressHandler.ListTopicProgress)
		}

		// Catalog reads
		if cfg.CatalogHandler != nil {
			api.GET("/domains", cfg.CatalogHandler.ListDomains)
			api.GET("/domains/:id", cfg.CatalogHandler.GetDomain)
			api.GET("/domains/:id/topics", cfg.CatalogHandler.ListTopics)
			api.GET("/topics/:id", cfg.CatalogHandler.GetTopic)
			api.GET("/topics/:id/items", cfg.CatalogHandler.ListContentItems)
			api.GET("/items/:id", cfg.CatalogHandler.GetContentItem)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			api.GET("/sse/stream", cfg.RealtimeHandler.SSEStream)
		}
	}

	// Admin routes are registered on the engine, so RequireUser from the
	// /api group does not apply to them.
	if cfg.CatalogHandler != nil && cfg.AuthMiddleware.AdminEnabled() {
		admin := r.Group("/api/admin")
		admin.Use(cfg.AuthMiddleware.RequireAdminKey())
		{
			admin.POST("/domains", cfg.CatalogHandler.CreateDomain)
			admin.PATCH("/domains/:id", cfg.CatalogHandler.UpdateDomain)
			admin.DELETE("/domains/:id", cfg.CatalogHandler.DeleteDomain)

			admin.POST("/topics", cfg.CatalogHandler.CreateTopic)
			admin.PATCH("/topics/:id", cfg.CatalogHandler.UpdateTopic)
			admin.DELETE("/topics/:id", cfg.CatalogHandler.DeleteTopic)

			admin.POST("/items", cfg.CatalogHandler.CreateContentItem)
			admin.PATCH("/items/:id", cfg.CatalogHandler.UpdateContentItem)
			admin.DELETE("/items/:id", cfg.CatalogHandler.DeleteContentItem)

			admin.POST("/import", cfg.CatalogHandler.Import)
		}
	}

	return r
}
