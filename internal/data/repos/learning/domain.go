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

type DomainRepo interface {
	Create(dbc dbctx.Context, rows []*types.Domain) ([]*types.Domain, error)

	List(dbc dbctx.Context) ([]*types.Domain, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Domain, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.Domain, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type domainRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDomainRepo(db *gorm.DB, baseLog *logger.Logger) DomainRepo {
	return &domainRepo{db: db, log: baseLog.With("repo", "DomainRepo")}
}

func (r *domainRepo) dbx(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *domainRepo) Create(dbc dbctx.Context, rows []*types.Domain) ([]*types.Domain, error) {
	if len(rows) == 0 {
		return []*types.Domain{}, nil
	}
	if err := r.dbx(dbc).WithContext(dbc.Context()).Create(&rows).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

func (r *domainRepo) List(dbc dbctx.Context) ([]*types.Domain, error) {
	out := []*types.Domain{}
	if err := r.dbx(dbc).WithContext(dbc.Context()).
		Order("order_position ASC, insert_seq ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *domainRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Domain, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Domain
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

// UpdateFields applies a partial update and returns the updated row, or nil
// when id does not exist.
func (r *domainRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*types.Domain, error) {
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
		Model(&types.Domain{}).
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

// Delete removes the domain; topics, items and progress go with it through
// the foreign key cascade.
func (r *domainRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := r.dbx(dbc).WithContext(dbc.Context()).
		Where("id = ?", id).
		Delete(&types.Domain{})
	if res.Error != nil {
		return false, dberr.Classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
