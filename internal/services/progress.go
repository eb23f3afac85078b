package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

// ErrUpdateProgress is the only failure text callers ever see; causes stay in
// the logs.
const ErrUpdateProgress = "failed to update progress"

var errMissingIDs = errors.New("user id and content item id are required")

// UpdateResult is the outcome of a progress write. Error is set only when
// Success is false.
type UpdateResult struct {
	Success  bool                       `json:"success"`
	Error    string                     `json:"error,omitempty"`
	Progress *types.UserContentProgress `json:"progress,omitempty"`
}

type ProgressService interface {
	// UpdateProgress records one change and never returns a Go error or
	// panics; failures come back as {Success:false}.
	UpdateProgress(dbc dbctx.Context, userID, contentItemID uuid.UUID, isCompleted bool, notes types.OptionalString, videos types.OptionalVideos) UpdateResult
	GetProgress(dbc dbctx.Context, userID, contentItemID uuid.UUID) (*types.UserContentProgress, error)
	ListTopicProgress(dbc dbctx.Context, userID, topicID uuid.UUID) ([]*types.UserContentProgress, error)
}

type progressService struct {
	log          *logger.Logger
	progressRepo repos.UserContentProgressRepo
	notifier     LearningNotifier
	metrics      *observability.Metrics
	now          func() time.Time
}

func NewProgressService(
	baseLog *logger.Logger,
	progressRepo repos.UserContentProgressRepo,
	notifier LearningNotifier,
	metrics *observability.Metrics,
) ProgressService {
	return &progressService{
		log:          baseLog.With("service", "ProgressService"),
		progressRepo: progressRepo,
		notifier:     notifier,
		metrics:      metrics,
		now:          time.Now,
	}
}

func (s *progressService) UpdateProgress(
	dbc dbctx.Context,
	userID, contentItemID uuid.UUID,
	isCompleted bool,
	notes types.OptionalString,
	videos types.OptionalVideos,
) (res UpdateResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("progress update panicked", "user_id", userID, "content_item_id", contentItemID, "panic", fmt.Sprint(r))
			s.metrics.IncProgressUpdate(observability.OutcomeError)
			res = UpdateResult{Success: false, Error: ErrUpdateProgress}
		}
	}()

	if userID == uuid.Nil || contentItemID == uuid.Nil {
		s.log.Warn("progress update rejected", "user_id", userID, "content_item_id", contentItemID, "error", errMissingIDs)
		s.metrics.IncProgressUpdate(observability.OutcomeInvalid)
		return UpdateResult{Success: false, Error: ErrUpdateProgress}
	}

	patch := types.ProgressPatch{
		IsCompleted: &isCompleted,
		Notes:       notes,
		Videos:      videos,
	}
	row, err := s.progressRepo.Upsert(dbc, userID, contentItemID, patch, s.now())
	if err != nil {
		s.log.Error("progress update failed", "user_id", userID, "content_item_id", contentItemID, "error", err)
		s.metrics.IncProgressUpdate(observability.OutcomeError)
		return UpdateResult{Success: false, Error: ErrUpdateProgress}
	}

	s.metrics.IncProgressUpdate(observability.OutcomeSuccess)
	if s.notifier != nil {
		s.notifier.LearningDataInvalidated(dbc.Context(), userID, row)
	}
	return UpdateResult{Success: true, Progress: row}
}

func (s *progressService) GetProgress(dbc dbctx.Context, userID, contentItemID uuid.UUID) (*types.UserContentProgress, error) {
	row, err := s.progressRepo.Get(dbc, userID, contentItemID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return row, nil
}

func (s *progressService) ListTopicProgress(dbc dbctx.Context, userID, topicID uuid.UUID) ([]*types.UserContentProgress, error) {
	rows, err := s.progressRepo.ListByTopicID(dbc, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("list topic progress: %w", err)
	}
	return rows, nil
}
