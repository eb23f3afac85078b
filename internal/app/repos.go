package app

import (
	"gorm.io/gorm"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

type Repos struct {
	Domain      repos.DomainRepo
	Topic       repos.TopicRepo
	ContentItem repos.ContentItemRepo
	Progress    repos.UserContentProgressRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Domain:      repos.NewDomainRepo(db, log),
		Topic:       repos.NewTopicRepo(db, log),
		ContentItem: repos.NewContentItemRepo(db, log),
		Progress:    repos.NewUserContentProgressRepo(db, log),
	}
}
