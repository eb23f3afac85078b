package domain

import (
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/catalog"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/progress"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/views"
)

type ContentType = catalog.ContentType

const (
	ContentTypeAlgorithm  = catalog.ContentTypeAlgorithm
	ContentTypeAWSService = catalog.ContentTypeAWSService
	ContentTypeConcept    = catalog.ContentTypeConcept
	ContentTypeFramework  = catalog.ContentTypeFramework
)

var (
	ParseContentType   = catalog.ParseContentType
	AllContentTypes    = catalog.AllContentTypes
	NewProgressSummary = views.NewProgressSummary
)

type Domain = catalog.Domain
type Topic = catalog.Topic
type ContentItem = catalog.ContentItem

type Video = progress.Video
type UserContentProgress = progress.UserContentProgress
type ProgressPatch = progress.Patch
type OptionalString = progress.OptionalString
type OptionalVideos = progress.OptionalVideos

type ProgressSummary = views.ProgressSummary
type ContentItemView = views.ContentItemView
type TopicView = views.TopicView
type DomainView = views.DomainView

// Models lists every table owned by the service in migration order.
func Models() []any {
	return []any{
		&Domain{},
		&Topic{},
		&ContentItem{},
		&UserContentProgress{},
	}
}
