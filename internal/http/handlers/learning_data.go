package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/response"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/ctxutil"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

type LearningDataHandler struct {
	svc services.LearningDataService
}

func NewLearningDataHandler(svc services.LearningDataService) *LearningDataHandler {
	return &LearningDataHandler{svc: svc}
}

// GET /api/learning-data
func (h *LearningDataHandler) GetLearningData(c *gin.Context) {
	userID := ctxutil.UserID(c.Request.Context())
	domains, err := h.svc.GetUserLearningData(requestDBC(c), userID)
	if err != nil {
		_ = c.Error(err)
		response.RespondError(c, http.StatusServiceUnavailable, "learning_data_unavailable", errLearningData)
		return
	}
	if domains == nil {
		domains = []types.DomainView{}
	}
	response.RespondOK(c, gin.H{"domains": domains})
}
