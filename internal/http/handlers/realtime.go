package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/response"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/ctxutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.SSEHub

	mu      sync.Mutex
	streams map[uuid.UUID]int // open streams per user
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub) *RealtimeHandler {
	return &RealtimeHandler{
		log:     log.With("handler", "RealtimeHandler"),
		hub:     hub,
		streams: make(map[uuid.UUID]int),
	}
}

// GET /api/sse/stream
//
// Every open tab gets its own client on the user's channel plus the shared
// catalog channel.
func (h *RealtimeHandler) SSEStream(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	if userID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errNilID)
		return
	}

	client := h.hub.NewSSEClient(userID)
	h.hub.AddChannel(client, realtime.UserChannel(userID))
	h.hub.AddChannel(client, realtime.CatalogChannel)
	open := h.track(userID, 1)
	h.log.Info("SSE stream open", "user_id", userID, "client_id", client.ID, "open_streams", open)

	h.hub.ServeHTTP(c.Writer, c.Request, client)

	h.hub.CloseClient(client)
	open = h.track(userID, -1)
	h.log.Info("SSE stream closed", "user_id", userID, "client_id", client.ID, "open_streams", open)
}

func (h *RealtimeHandler) track(userID uuid.UUID, delta int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.streams[userID] + delta
	if n <= 0 {
		delete(h.streams, userID)
		return 0
	}
	h.streams[userID] = n
	return n
}

// OpenStreams returns how many streams the user currently holds.
func (h *RealtimeHandler) OpenStreams(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.streams[userID]
}
