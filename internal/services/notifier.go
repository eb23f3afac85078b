package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
)

const notifyTimeout = 2 * time.Second

// LearningNotifier tells connected dashboards that cached data went stale.
// Delivery is best effort; failures are logged and never returned.
type LearningNotifier interface {
	LearningDataInvalidated(ctx context.Context, userID uuid.UUID, row *types.UserContentProgress)
	CatalogChanged(ctx context.Context, entity, op string, id uuid.UUID)
}

type learningNotifier struct {
	emit    SSEEmitter
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewLearningNotifier(emit SSEEmitter, baseLog *logger.Logger, metrics *observability.Metrics) LearningNotifier {
	return &learningNotifier{
		emit:    emit,
		log:     baseLog.With("component", "LearningNotifier"),
		metrics: metrics,
	}
}

func (n *learningNotifier) LearningDataInvalidated(ctx context.Context, userID uuid.UUID, row *types.UserContentProgress) {
	if n == nil || n.emit == nil || userID == uuid.Nil {
		return
	}
	data := map[string]any{"user_id": userID}
	if row != nil {
		data["content_item_id"] = row.ContentItemID
		data["is_completed"] = row.IsCompleted
		data["last_updated"] = row.LastUpdated
	}
	n.send(ctx, realtime.SSEMessage{
		Channel: realtime.UserChannel(userID),
		Event:   realtime.SSEEventLearningDataInvalidated,
		Data:    data,
	})
}

func (n *learningNotifier) CatalogChanged(ctx context.Context, entity, op string, id uuid.UUID) {
	if n == nil || n.emit == nil {
		return
	}
	n.send(ctx, realtime.SSEMessage{
		Channel: realtime.CatalogChannel,
		Event:   realtime.SSEEventCatalogChanged,
		Data:    map[string]any{"entity": entity, "op": op, "id": id},
	})
}

func (n *learningNotifier) send(ctx context.Context, msg realtime.SSEMessage) {
	if ctx == nil {
		ctx = context.Background()
	}
	// detach from the request so a client disconnect does not drop the event
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := n.emit.Emit(ctx, msg); err != nil {
		n.metrics.IncRealtimeEvent(string(msg.Event), observability.OutcomeError)
		n.log.Warn("realtime publish failed", "event", msg.Event, "channel", msg.Channel, "error", err)
		return
	}
	n.metrics.IncRealtimeEvent(string(msg.Event), observability.OutcomeSuccess)
}
