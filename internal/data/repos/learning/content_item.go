package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dberr"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

const contentItemOrder = "type ASC, order_position ASC, insert_seq ASC"

type ContentItemRepo interface {
	Create(dbc dbctx.Context, rows []*types.ContentItem) ([]*types.ContentItem, error)

	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ContentItem, error)
	ListByTopicID(dbc dbctx.Context, topicID uuid.UUID) ([]*types.ContentItem, error)
	ListByTopicIDs(dbc dbctx.Context, topicIDs []uuid.UUID) ([]*types.ContentItem, error)
	ListByTopicIDAndType(dbc dbctx.Context, topicID uuid.UUID, typ types.ContentType) ([]*types.ContentItem, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.ContentItem, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type contentItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentItemRepo(db *gorm.DB, baseLog *logger.Logger) ContentItemRepo {
	return &contentItemRepo{db: db, log: baseLog.With("repo", "ContentItemRepo")}
}

func (r *contentItemRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *contentItemRepo) Create(dbc dbctx.Context, rows []*types.ContentItem) ([]*types.ContentItem, error) {
	if len(rows) == 0 {
		return []*types.ContentItem{}, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Context()).Create(&rows).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

func (r *contentItemRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ContentItem, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.ContentItem
	err := r.dbx(dbc).WithContext(dbc.Context()).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, dberr.Classify(err)
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *contentItemRepo) ListByTopicID(dbc dbctx.Context, topicID uuid.UUID) ([]*types.ContentItem, error) {
	out := []*types.ContentItem{}
	if topicID == uuid.Nil {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Context()).
		Where("topic_id = ?", topicID).
		Order(contentItemOrder).
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *contentItemRepo) ListByTopicIDs(dbc dbctx.Context, topicIDs []uuid.UUID) ([]*types.ContentItem, error) {
	out := []*types.ContentItem{}
	if len(topicIDs) == 0 {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Context()).
		Where("topic_id IN ?", topicIDs).
		Order("topic_id ASC, " + contentItemOrder).
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *contentItemRepo) ListByTopicIDAndType(dbc dbctx.Context, topicID uuid.UUID, typ types.ContentType) ([]*types.ContentItem, error) {
	out := []*types.ContentItem{}
	if topicID == uuid.Nil || !typ.Valid() {
		return out, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Context()).
		Where("topic_id = ? AND type = ?", topicID, typ).
		Order("order_position ASC, insert_seq ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *contentItemRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.ContentItem, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	res := r.dbx(dbc).WithContext(dbc.Context()).
		Model(&types.ContentItem{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, dberr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(dbc, id)
}

func (r *contentItemRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := r.dbx(dbc).WithContext(dbc.Context()).Where("id = ?", id).Delete(&types.ContentItem{})
	if res.Error != nil {
		return false, dberr.Classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
