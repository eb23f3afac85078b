package learning

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dberr"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

var ErrMissingProgressKey = errors.New("progress requires a user id and a content item id")

type UserContentProgressRepo interface {
	Get(dbc dbctx.Context, userID, contentItemID uuid.UUID) (*types.UserContentProgress, error)
	GetForItems(dbc dbctx.Context, userID uuid.UUID, contentItemIDs []uuid.UUID) (map[uuid.UUID]*types.UserContentProgress, error)
	ListByTopicID(dbc dbctx.Context, userID, topicID uuid.UUID) ([]*types.UserContentProgress, error)

	// Upsert creates or updates the (user, item) record in one transaction.
	// Only the patch's provided fields overwrite stored values.
	Upsert(dbc dbctx.Context, userID, contentItemID uuid.UUID, patch types.ProgressPatch, now time.Time) (*types.UserContentProgress, error)
}

type userContentProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserContentProgressRepo(db *gorm.DB, baseLog *logger.Logger) UserContentProgressRepo {
	return &userContentProgressRepo{db: db, log: baseLog.With("repo", "UserContentProgressRepo")}
}

func (r *userContentProgressRepo) Get(dbc dbctx.Context, userID, contentItemID uuid.UUID) (*types.UserContentProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || contentItemID == uuid.Nil {
		return nil, nil
	}
	var row types.UserContentProgress
	err := t.WithContext(dbc.Context()).
		Where("user_id = ? AND content_item_id = ?", userID, contentItemID).
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

func (r *userContentProgressRepo) GetForItems(dbc dbctx.Context, userID uuid.UUID, contentItemIDs []uuid.UUID) (map[uuid.UUID]*types.UserContentProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := map[uuid.UUID]*types.UserContentProgress{}
	if userID == uuid.Nil || len(contentItemIDs) == 0 {
		return out, nil
	}
	var rows []*types.UserContentProgress
	if err := t.WithContext(dbc.Context()).
		Where("user_id = ? AND content_item_id IN ?", userID, contentItemIDs).
		Find(&rows).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	for _, row := range rows {
		if row == nil {
			continue
		}
		out[row.ContentItemID] = row
	}
	return out, nil
}

func (r *userContentProgressRepo) ListByTopicID(dbc dbctx.Context, userID, topicID uuid.UUID) ([]*types.UserContentProgress, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.UserContentProgress{}
	if userID == uuid.Nil || topicID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Context()).
		Joins("JOIN learning_content_item ON learning_content_item.id = user_content_progress.content_item_id").
		Where("user_content_progress.user_id = ? AND learning_content_item.topic_id = ?", userID, topicID).
		Order("learning_content_item.type ASC, learning_content_item.order_position ASC, learning_content_item.insert_seq ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return out, nil
}

func (r *userContentProgressRepo) Upsert(dbc dbctx.Context, userID, contentItemID uuid.UUID, patch types.ProgressPatch, now time.Time) (*types.UserContentProgress, error) {
	if userID == uuid.Nil || contentItemID == uuid.Nil {
		return nil, ErrMissingProgressKey
	}
	if now.IsZero() {
		now = time.Now()
	}
	if dbc.Tx != nil {
		return r.upsertTx(dbc, userID, contentItemID, patch, now)
	}
	var out *types.UserContentProgress
	err := r.db.WithContext(dbc.Context()).Transaction(func(tx *gorm.DB) error {
		row, err := r.upsertTx(dbc.WithTx(tx), userID, contentItemID, patch, now)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userContentProgressRepo) upsertTx(dbc dbctx.Context, userID, contentItemID uuid.UUID, patch types.ProgressPatch, now time.Time) (*types.UserContentProgress, error) {
	tx := dbc.Tx.WithContext(dbc.Context())

	var prev types.UserContentProgress
	q := tx.Where("user_id = ? AND content_item_id = ?", userID, contentItemID).Limit(1)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.Find(&prev).Error; err != nil {
		return nil, dberr.Classify(err)
	}

	row := &types.UserContentProgress{
		ID:            uuid.New(),
		UserID:        userID,
		ContentItemID: contentItemID,
		IsCompleted:   false,
	}
	if prev.ID != uuid.Nil {
		cur := prev
		cur.ID = uuid.New()
		row = &cur
	}
	patch.Apply(row)
	row.LastUpdated = nextStamp(now, prev.LastUpdated)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "content_item_id"},
		},
		DoUpdates: clause.AssignmentColumns(patch.Columns()),
	}).Create(row).Error
	if err != nil {
		return nil, dberr.Classify(err)
	}

	var out types.UserContentProgress
	if err := tx.Where("user_id = ? AND content_item_id = ?", userID, contentItemID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	if out.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	r.log.Debug("progress upserted", "user_id", userID, "content_item_id", contentItemID, "columns", patch.Columns())
	return &out, nil
}

// nextStamp keeps last_updated strictly increasing per record even when the
// clock stalls or steps backwards. Postgres stores microseconds.
func nextStamp(now, prev time.Time) time.Time {
	stamp := now.UTC().Truncate(time.Microsecond)
	if prev.IsZero() {
		return stamp
	}
	floor := prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	if stamp.Before(floor) {
		return floor
	}
	return stamp
}
