package app

import (
	"gorm.io/gorm"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime/bus"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

type Services struct {
	Notifier     services.LearningNotifier
	LearningData services.LearningDataService
	Progress     services.ProgressService
	Catalog      services.CatalogService
}

// wireServices publishes realtime events onto the bus; the forwarder started
// in App.Start delivers them to local SSE clients.
func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, eventBus bus.Bus, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	notifier := services.NewLearningNotifier(&services.BusEmitter{Bus: eventBus}, log, metrics)
	return Services{
		Notifier: notifier,
		LearningData: services.NewLearningDataService(
			log,
			reposet.Domain,
			reposet.Topic,
			reposet.ContentItem,
			reposet.Progress,
			metrics,
			services.LearningDataConfig{
				Concurrency: cfg.AggregateConcurrency,
				Timeout:     cfg.AggregateTimeout,
			},
		),
		Progress: services.NewProgressService(log, reposet.Progress, notifier, metrics),
		Catalog:  services.NewCatalogService(db, log, reposet.Domain, reposet.Topic, reposet.ContentItem, notifier, metrics),
	}
}
