package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/catalog"
)

// Video is a reference a learner attached to a content item.
type Video struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// UserContentProgress is the per-user, per-item progress record. At most one
// row exists per (user_id, content_item_id).
type UserContentProgress struct {
	ID            uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID                  `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_content_progress_user_item,priority:1" json:"user_id"`
	ContentItemID uuid.UUID                  `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_content_progress_user_item,priority:2" json:"content_item_id"`
	ContentItem   *catalog.ContentItem       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContentItemID;references:ID" json:"-"`
	IsCompleted   bool                       `gorm:"column:is_completed;not null" json:"is_completed"`
	Notes         *string                    `gorm:"column:notes;type:text" json:"notes"`
	Videos        datatypes.JSONSlice[Video] `gorm:"column:videos" json:"videos"`
	LastUpdated   time.Time                  `gorm:"column:last_updated;not null" json:"last_updated"`
}

func (UserContentProgress) TableName() string { return "user_content_progress" }

// Patch describes a progress change. Unset fields keep their stored value.
type Patch struct {
	IsCompleted *bool
	Notes       OptionalString
	Videos      OptionalVideos
}

// Columns returns the columns a conflicting upsert must overwrite.
func (p Patch) Columns() []string {
	cols := []string{}
	if p.IsCompleted != nil {
		cols = append(cols, "is_completed")
	}
	if p.Notes.Set {
		cols = append(cols, "notes")
	}
	if p.Videos.Set {
		cols = append(cols, "videos")
	}
	return append(cols, "last_updated")
}

// Apply copies the provided fields onto row.
func (p Patch) Apply(row *UserContentProgress) {
	if row == nil {
		return
	}
	if p.IsCompleted != nil {
		row.IsCompleted = *p.IsCompleted
	}
	if p.Notes.Set {
		row.Notes = p.Notes.Value
	}
	if p.Videos.Set {
		row.Videos = datatypes.JSONSlice[Video](p.Videos.Value)
	}
}
