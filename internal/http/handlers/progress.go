package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/response"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/ctxutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

type ProgressHandler struct {
	svc services.ProgressService
}

func NewProgressHandler(svc services.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// updateProgressRequest keeps notes and videos tri-state: absent leaves the
// stored value, null clears it.
type updateProgressRequest struct {
	IsCompleted *bool                `json:"is_completed"`
	Notes       types.OptionalString `json:"notes"`
	Videos      types.OptionalVideos `json:"videos"`
}

// PUT /api/progress/:contentItemId
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	itemID, ok := uuidParam(c, "contentItemId", "invalid_content_item_id")
	if !ok {
		return
	}
	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.IsCompleted == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errMissingStatus)
		return
	}

	userID := ctxutil.UserID(c.Request.Context())
	res := h.svc.UpdateProgress(requestDBC(c), userID, itemID, *req.IsCompleted, req.Notes, req.Videos)
	if !res.Success {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/progress/:contentItemId
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	itemID, ok := uuidParam(c, "contentItemId", "invalid_content_item_id")
	if !ok {
		return
	}
	row, err := h.svc.GetProgress(requestDBC(c), ctxutil.UserID(c.Request.Context()), itemID)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "get_progress_failed")
		return
	}
	if row == nil {
		response.RespondError(c, http.StatusNotFound, "progress_not_found", errNotFound)
		return
	}
	response.RespondOK(c, gin.H{"progress": row})
}

// GET /api/topics/:id/progress
func (h *ProgressHandler) ListTopicProgress(c *gin.Context) {
	topicID, ok := uuidParam(c, "id", "invalid_topic_id")
	if !ok {
		return
	}
	rows, err := h.svc.ListTopicProgress(requestDBC(c), ctxutil.UserID(c.Request.Context()), topicID)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "list_progress_failed")
		return
	}
	if rows == nil {
		rows = []*types.UserContentProgress{}
	}
	response.RespondOK(c, gin.H{"progress": rows})
}
