package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/http/response"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/services"
)

// CatalogHandler serves catalog reads to learners and writes to admins.
type CatalogHandler struct {
	svc services.CatalogService
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// GET /api/domains
func (h *CatalogHandler) ListDomains(c *gin.Context) {
	rows, err := h.svc.ListDomains(requestDBC(c))
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "list_domains_failed")
		return
	}
	response.RespondOK(c, gin.H{"domains": rows})
}

// GET /api/domains/:id
func (h *CatalogHandler) GetDomain(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_domain_id")
	if !ok {
		return
	}
	row, err := h.svc.GetDomain(requestDBC(c), id)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "get_domain_failed")
		return
	}
	response.RespondOK(c, gin.H{"domain": row})
}

// GET /api/domains/:id/topics
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_domain_id")
	if !ok {
		return
	}
	rows, err := h.svc.ListTopics(requestDBC(c), id)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "list_topics_failed")
		return
	}
	response.RespondOK(c, gin.H{"topics": rows})
}

// GET /api/topics/:id
func (h *CatalogHandler) GetTopic(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_topic_id")
	if !ok {
		return
	}
	row, err := h.svc.GetTopic(requestDBC(c), id)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "get_topic_failed")
		return
	}
	response.RespondOK(c, gin.H{"topic": row})
}

// GET /api/topics/:id/items?type=
func (h *CatalogHandler) ListContentItems(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_topic_id")
	if !ok {
		return
	}
	rows, err := h.svc.ListContentItems(requestDBC(c), id, c.Query("type"))
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "list_content_items_failed")
		return
	}
	response.RespondOK(c, gin.H{"items": rows})
}

// GET /api/items/:id
func (h *CatalogHandler) GetContentItem(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_content_item_id")
	if !ok {
		return
	}
	row, err := h.svc.GetContentItem(requestDBC(c), id)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "get_content_item_failed")
		return
	}
	response.RespondOK(c, gin.H{"item": row})
}

// POST /api/admin/domains
func (h *CatalogHandler) CreateDomain(c *gin.Context) {
	var in services.CreateDomainInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.CreateDomain(requestDBC(c), in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "create_domain_failed")
		return
	}
	response.RespondCreated(c, gin.H{"domain": row})
}

// PATCH /api/admin/domains/:id
func (h *CatalogHandler) UpdateDomain(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_domain_id")
	if !ok {
		return
	}
	var in services.UpdateDomainInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.UpdateDomain(requestDBC(c), id, in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "update_domain_failed")
		return
	}
	response.RespondOK(c, gin.H{"domain": row})
}

// DELETE /api/admin/domains/:id
func (h *CatalogHandler) DeleteDomain(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_domain_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteDomain(requestDBC(c), id); err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "delete_domain_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/admin/topics
func (h *CatalogHandler) CreateTopic(c *gin.Context) {
	var in services.CreateTopicInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.CreateTopic(requestDBC(c), in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "create_topic_failed")
		return
	}
	response.RespondCreated(c, gin.H{"topic": row})
}

// PATCH /api/admin/topics/:id
func (h *CatalogHandler) UpdateTopic(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_topic_id")
	if !ok {
		return
	}
	var in services.UpdateTopicInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.UpdateTopic(requestDBC(c), id, in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "update_topic_failed")
		return
	}
	response.RespondOK(c, gin.H{"topic": row})
}

// DELETE /api/admin/topics/:id
func (h *CatalogHandler) DeleteTopic(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_topic_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTopic(requestDBC(c), id); err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "delete_topic_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/admin/items
func (h *CatalogHandler) CreateContentItem(c *gin.Context) {
	var in services.CreateContentItemInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.CreateContentItem(requestDBC(c), in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "create_content_item_failed")
		return
	}
	response.RespondCreated(c, gin.H{"item": row})
}

// PATCH /api/admin/items/:id
func (h *CatalogHandler) UpdateContentItem(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_content_item_id")
	if !ok {
		return
	}
	var in services.UpdateContentItemInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.svc.UpdateContentItem(requestDBC(c), id, in)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "update_content_item_failed")
		return
	}
	response.RespondOK(c, gin.H{"item": row})
}

// DELETE /api/admin/items/:id
func (h *CatalogHandler) DeleteContentItem(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invalid_content_item_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteContentItem(requestDBC(c), id); err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "delete_content_item_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/admin/import
func (h *CatalogHandler) Import(c *gin.Context) {
	var doc services.CatalogDocument
	if !bindJSON(c, &doc) {
		return
	}
	summary, err := h.svc.Import(requestDBC(c), doc)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, err, "import_failed")
		return
	}
	response.RespondCreated(c, gin.H{"imported": summary})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}
