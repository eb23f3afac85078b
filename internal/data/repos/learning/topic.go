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

type TopicRepo interface {
	Create(dbc dbctx.Context, rows []*types.Topic) ([]*types.Topic, error)

	List(dbc dbctx.Context) ([]*types.Topic, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Topic, error)
	ListByDomainID(dbc dbctx.Context, domainID uuid.UUID) ([]*types.Topic, error)
	ListByDomainIDs(dbc dbctx.Context, domainIDs []uuid.UUID) ([]*types.Topic, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.Topic, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return &topicRepo{db: db, log: baseLog.With("repo", "TopicRepo")}
}

func (r *topicRepo) Create(dbc dbctx.Context, rows []*types.Topic) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Topic{}, nil
	}
	if err := t.WithContext(dbc.Context()).Create(&rows).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

func (r *topicRepo) List(dbc dbctx.Context) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Topic{}
	if err := t.WithContext(dbc.Context()).
		Order("order_position ASC, insert_seq ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *topicRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Topic, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var row types.Topic
	err := t.WithContext(dbc.Context()).
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

func (r *topicRepo) ListByDomainID(dbc dbctx.Context, domainID uuid.UUID) ([]*types.Topic, error) {
	if domainID == uuid.Nil {
		return []*types.Topic{}, nil
	}
	return r.ListByDomainIDs(dbc, []uuid.UUID{domainID})
}

// ListByDomainIDs returns topics for every domain in one query, ordered by
// domain then position.
func (r *topicRepo) ListByDomainIDs(dbc dbctx.Context, domainIDs []uuid.UUID) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Topic{}
	if len(domainIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Context()).
		Where("domain_id IN ?", domainIDs).
		Order("domain_id ASC, order_position ASC, insert_seq ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *topicRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	res := t.WithContext(dbc.Context()).
		Model(&types.Topic{}).
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

func (r *topicRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return false, nil
	}
	res := t.WithContext(dbc.Context()).Where("id = ?", id).Delete(&types.Topic{})
	if res.Error != nil {
		return false, dberr.Classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
