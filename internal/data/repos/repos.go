package repos

import (
	"gorm.io/gorm"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos/learning"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

type DomainRepo = learning.DomainRepo
type TopicRepo = learning.TopicRepo
type ContentItemRepo = learning.ContentItemRepo
type UserContentProgressRepo = learning.UserContentProgressRepo

var ErrMissingProgressKey = learning.ErrMissingProgressKey

func NewDomainRepo(db *gorm.DB, baseLog *logger.Logger) DomainRepo {
	return learning.NewDomainRepo(db, baseLog)
}
func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return learning.NewTopicRepo(db, baseLog)
}
func NewContentItemRepo(db *gorm.DB, baseLog *logger.Logger) ContentItemRepo {
	return learning.NewContentItemRepo(db, baseLog)
}
func NewUserContentProgressRepo(db *gorm.DB, baseLog *logger.Logger) UserContentProgressRepo {
	return learning.NewUserContentProgressRepo(db, baseLog)
}
