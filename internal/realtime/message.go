package realtime

import (
	"github.com/google/uuid"
)

type SSEEvent string

const (
	// SSEEventLearningDataInvalidated tells dashboards that a cached learning
	// tree for the user is stale and should be refetched.
	SSEEventLearningDataInvalidated SSEEvent = "LearningDataInvalidated"
	SSEEventCatalogChanged          SSEEvent = "CatalogChanged"
)

// CatalogChannel is shared by every subscriber; catalog edits affect all users.
const CatalogChannel = "catalog"

type SSEMessage struct {
	Channel string   `json:"channel"`
	Event   SSEEvent `json:"event"`
	Data    any      `json:"data,omitempty"`
}

// UserChannel is the per-user channel name.
func UserChannel(userID uuid.UUID) string {
	if userID == uuid.Nil {
		return ""
	}
	return userID.String()
}
