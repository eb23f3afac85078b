package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

const (
	DefaultAggregateConcurrency = 8
	DefaultAggregateTimeout     = 10 * time.Second
)

type LearningDataService interface {
	// GetUserLearningData returns the full Domain -> Topic -> ContentItem tree
	// with the user's progress attached. Any store fault fails the whole call.
	GetUserLearningData(dbc dbctx.Context, userID uuid.UUID) ([]types.DomainView, error)
}

type LearningDataConfig struct {
	Concurrency int
	Timeout     time.Duration
}

type learningDataService struct {
	log          *logger.Logger
	domainRepo   repos.DomainRepo
	topicRepo    repos.TopicRepo
	itemRepo     repos.ContentItemRepo
	progressRepo repos.UserContentProgressRepo
	metrics      *observability.Metrics
	concurrency  int
	timeout      time.Duration
}

func NewLearningDataService(
	baseLog *logger.Logger,
	domainRepo repos.DomainRepo,
	topicRepo repos.TopicRepo,
	itemRepo repos.ContentItemRepo,
	progressRepo repos.UserContentProgressRepo,
	metrics *observability.Metrics,
	cfg LearningDataConfig,
) LearningDataService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultAggregateConcurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultAggregateTimeout
	}
	return &learningDataService{
		log:          baseLog.With("service", "LearningDataService"),
		domainRepo:   domainRepo,
		topicRepo:    topicRepo,
		itemRepo:     itemRepo,
		progressRepo: progressRepo,
		metrics:      metrics,
		concurrency:  cfg.Concurrency,
		timeout:      cfg.Timeout,
	}
}

func (s *learningDataService) GetUserLearningData(dbc dbctx.Context, userID uuid.UUID) ([]types.DomainView, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(dbc.Context(), s.timeout)
	defer cancel()

	ctx, span := observability.Tracer("services").Start(ctx, "learning.GetUserLearningData")
	defer span.End()

	out, stats, err := s.load(dbc.WithCtx(ctx), userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "learning tree failed")
		s.metrics.ObserveLearningTree(observability.OutcomeError, 0, time.Since(start))
		s.log.Warn("learning tree failed", "user_id", userID, "error", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("learning.domains", stats.Domains),
		attribute.Int("learning.topics", stats.Topics),
		attribute.Int("learning.items", stats.Items),
	)
	s.metrics.ObserveLearningTree(observability.OutcomeSuccess, stats.Domains, time.Since(start))
	if stats.Orphans > 0 {
		s.log.Debug("skipped orphan progress records", "user_id", userID, "count", stats.Orphans)
	}
	return out, nil
}

func (s *learningDataService) load(dbc dbctx.Context, userID uuid.UUID) ([]types.DomainView, TreeStats, error) {
	domains, err := s.domainRepo.List(dbc)
	if err != nil {
		return nil, TreeStats{}, fmt.Errorf("list domains: %w", err)
	}
	domainIDs := make([]uuid.UUID, 0, len(domains))
	for _, d := range domains {
		domainIDs = append(domainIDs, d.ID)
	}

	topics, err := s.topicRepo.ListByDomainIDs(dbc, domainIDs)
	if err != nil {
		return nil, TreeStats{}, fmt.Errorf("list topics: %w", err)
	}
	topicIDs := make([]uuid.UUID, 0, len(topics))
	for _, t := range topics {
		topicIDs = append(topicIDs, t.ID)
	}

	items, err := s.itemRepo.ListByTopicIDs(dbc, topicIDs)
	if err != nil {
		return nil, TreeStats{}, fmt.Errorf("list content items: %w", err)
	}
	itemIDsByTopic := make(map[uuid.UUID][]uuid.UUID, len(topics))
	for _, it := range items {
		itemIDsByTopic[it.TopicID] = append(itemIDsByTopic[it.TopicID], it.ID)
	}

	// one slot per topic, filled by position so arrival order never matters
	slots := make([]map[uuid.UUID]*types.UserContentProgress, len(topics))
	g, gctx := errgroup.WithContext(dbc.Context())
	limit := s.concurrency
	if dbc.Tx != nil {
		// a transaction is a single connection and cannot serve parallel queries
		limit = 1
	}
	g.SetLimit(limit)
	for i, t := range topics {
		ids := itemIDsByTopic[t.ID]
		if len(ids) == 0 {
			continue
		}
		g.Go(func() error {
			records, err := s.progressRepo.GetForItems(dbc.WithCtx(gctx), userID, ids)
			if err != nil {
				return fmt.Errorf("progress for topic %s: %w", t.ID, err)
			}
			slots[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, TreeStats{}, err
	}

	progressByTopic := make(map[uuid.UUID]map[uuid.UUID]*types.UserContentProgress, len(topics))
	for i, t := range topics {
		if slots[i] != nil {
			progressByTopic[t.ID] = slots[i]
		}
	}

	out, stats := BuildLearningTree(domains, topics, items, progressByTopic)
	return out, stats, nil
}
