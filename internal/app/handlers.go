package app

import (
	httpH "github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/handlers"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
)

type Handlers struct {
	Health       *httpH.HealthHandler
	LearningData *httpH.LearningDataHandler
	Progress     *httpH.ProgressHandler
	Catalog      *httpH.CatalogHandler
	Realtime     *httpH.RealtimeHandler
}

func wireHandlers(log *logger.Logger, services Services, sseHub *realtime.SSEHub, ready httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(ready),
		LearningData: httpH.NewLearningDataHandler(services.LearningData),
		Progress:     httpH.NewProgressHandler(services.Progress),
		Catalog:      httpH.NewCatalogHandler(services.Catalog),
		Realtime:     httpH.NewRealtimeHandler(log, sseHub),
	}
}
