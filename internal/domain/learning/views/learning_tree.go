package views

import (
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/catalog"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/progress"
)

// ProgressSummary is a completed/total roll-up. Percentage is 0 when Total is 0.
type ProgressSummary struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func NewProgressSummary(completed, total int) ProgressSummary {
	s := ProgressSummary{Completed: completed, Total: total}
	if total > 0 {
		s.Percentage = float64(completed) / float64(total) * 100
	}
	return s
}

// Add folds other into s and recomputes the percentage.
func (s ProgressSummary) Add(other ProgressSummary) ProgressSummary {
	return NewProgressSummary(s.Completed+other.Completed, s.Total+other.Total)
}

// ContentItemView is a content item with the user's record, nil when the
// user never touched the item.
type ContentItemView struct {
	catalog.ContentItem
	Progress *progress.UserContentProgress `json:"progress"`
}

// Completed reports whether the attached record marks the item done.
func (v ContentItemView) Completed() bool {
	return v.Progress != nil && v.Progress.IsCompleted
}

type TopicView struct {
	catalog.Topic
	ContentItems map[catalog.ContentType][]ContentItemView `json:"content_items"`
	Progress     ProgressSummary                           `json:"progress"`
}

type DomainView struct {
	catalog.Domain
	Topics   []TopicView     `json:"topics"`
	Progress ProgressSummary `json:"progress"`
}
