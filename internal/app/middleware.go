package app

import (
	httpMW "github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/middleware"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	if cfg.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY unset, catalog admin routes disabled")
	}
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, cfg.AdminAPIKey),
	}
}
