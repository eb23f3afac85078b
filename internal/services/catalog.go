package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/observability"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/apierr"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

type CatalogService interface {
	ListDomains(dbc dbctx.Context) ([]*types.Domain, error)
	GetDomain(dbc dbctx.Context, id uuid.UUID) (*types.Domain, error)
	ListTopics(dbc dbctx.Context, domainID uuid.UUID) ([]*types.Topic, error)
	GetTopic(dbc dbctx.Context, id uuid.UUID) (*types.Topic, error)
	// ListContentItems filters by type when typ is non-empty.
	ListContentItems(dbc dbctx.Context, topicID uuid.UUID, typ string) ([]*types.ContentItem, error)
	GetContentItem(dbc dbctx.Context, id uuid.UUID) (*types.ContentItem, error)

	CreateDomain(dbc dbctx.Context, in CreateDomainInput) (*types.Domain, error)
	UpdateDomain(dbc dbctx.Context, id uuid.UUID, in UpdateDomainInput) (*types.Domain, error)
	DeleteDomain(dbc dbctx.Context, id uuid.UUID) error

	CreateTopic(dbc dbctx.Context, in CreateTopicInput) (*types.Topic, error)
	UpdateTopic(dbc dbctx.Context, id uuid.UUID, in UpdateTopicInput) (*types.Topic, error)
	DeleteTopic(dbc dbctx.Context, id uuid.UUID) error

	CreateContentItem(dbc dbctx.Context, in CreateContentItemInput) (*types.ContentItem, error)
	UpdateContentItem(dbc dbctx.Context, id uuid.UUID, in UpdateContentItemInput) (*types.ContentItem, error)
	DeleteContentItem(dbc dbctx.Context, id uuid.UUID) error

	// Import loads a whole catalog document in one transaction.
	Import(dbc dbctx.Context, doc CatalogDocument) (ImportSummary, error)
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	domainRepo repos.DomainRepo
	topicRepo  repos.TopicRepo
	itemRepo   repos.ContentItemRepo
	notifier   LearningNotifier
	metrics    *observability.Metrics
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	domainRepo repos.DomainRepo,
	topicRepo repos.TopicRepo,
	itemRepo repos.ContentItemRepo,
	notifier LearningNotifier,
	metrics *observability.Metrics,
) CatalogService {
	return &catalogService{
		db:         db,
		log:        baseLog.With("service", "CatalogService"),
		domainRepo: domainRepo,
		topicRepo:  topicRepo,
		itemRepo:   itemRepo,
		notifier:   notifier,
		metrics:    metrics,
	}
}

func validateInput(v any) error {
	if err := catalogValidate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return apierr.BadRequest("validation_failed", errors.New(strings.Join(parts, "; ")))
		}
		return apierr.BadRequest("validation_failed", err)
	}
	return nil
}

func (s *catalogService) written(dbc dbctx.Context, entity, op string, id uuid.UUID, err error) {
	if err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) && ae.Status < http.StatusInternalServerError {
			s.metrics.IncCatalogWrite(entity, op, observability.OutcomeInvalid)
			return
		}
		s.metrics.IncCatalogWrite(entity, op, observability.OutcomeError)
		s.log.Error("catalog write failed", "entity", entity, "op", op, "id", id, "error", err)
		return
	}
	s.metrics.IncCatalogWrite(entity, op, observability.OutcomeSuccess)
	if s.notifier != nil {
		s.notifier.CatalogChanged(dbc.Context(), entity, op, id)
	}
}

// ---- reads ----

func (s *catalogService) ListDomains(dbc dbctx.Context) ([]*types.Domain, error) {
	rows, err := s.domainRepo.List(dbc)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return rows, nil
}

func (s *catalogService) GetDomain(dbc dbctx.Context, id uuid.UUID) (*types.Domain, error) {
	row, err := s.domainRepo.GetByID(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("domain_not_found", "domain %s not found", id)
	}
	return row, nil
}

func (s *catalogService) ListTopics(dbc dbctx.Context, domainID uuid.UUID) ([]*types.Topic, error) {
	rows, err := s.topicRepo.ListByDomainID(dbc, domainID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return rows, nil
}

func (s *catalogService) GetTopic(dbc dbctx.Context, id uuid.UUID) (*types.Topic, error) {
	row, err := s.topicRepo.GetByID(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("topic_not_found", "topic %s not found", id)
	}
	return row, nil
}

func (s *catalogService) ListContentItems(dbc dbctx.Context, topicID uuid.UUID, typ string) ([]*types.ContentItem, error) {
	if strings.TrimSpace(typ) == "" {
		rows, err := s.itemRepo.ListByTopicID(dbc, topicID)
		if err != nil {
			return nil, fmt.Errorf("list content items: %w", err)
		}
		return rows, nil
	}
	ct, err := types.ParseContentType(typ)
	if err != nil {
		return nil, apierr.BadRequest("invalid_content_type", err)
	}
	rows, err := s.itemRepo.ListByTopicIDAndType(dbc, topicID, ct)
	if err != nil {
		return nil, fmt.Errorf("list content items by type: %w", err)
	}
	return rows, nil
}

func (s *catalogService) GetContentItem(dbc dbctx.Context, id uuid.UUID) (*types.ContentItem, error) {
	row, err := s.itemRepo.GetByID(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("get content item: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("content_item_not_found", "content item %s not found", id)
	}
	return row, nil
}

// ---- domains ----

func (s *catalogService) CreateDomain(dbc dbctx.Context, in CreateDomainInput) (out *types.Domain, err error) {
	defer func() { s.written(dbc, "domain", "create", idOf(out), err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	row := &types.Domain{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Weight:        in.Weight,
		OrderPosition: in.OrderPosition,
	}
	if _, err := s.domainRepo.Create(dbc, []*types.Domain{row}); err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}
	return row, nil
}

func (s *catalogService) UpdateDomain(dbc dbctx.Context, id uuid.UUID, in UpdateDomainInput) (out *types.Domain, err error) {
	defer func() { s.written(dbc, "domain", "update", id, err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	row, err := s.domainRepo.UpdateFields(dbc, id, in.fields())
	if err != nil {
		return nil, fmt.Errorf("update domain: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("domain_not_found", "domain %s not found", id)
	}
	return row, nil
}

func (s *catalogService) DeleteDomain(dbc dbctx.Context, id uuid.UUID) (err error) {
	defer func() { s.written(dbc, "domain", "delete", id, err) }()
	ok, err := s.domainRepo.Delete(dbc, id)
	if err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}
	if !ok {
		return apierr.NotFound("domain_not_found", "domain %s not found", id)
	}
	return nil
}

// ---- topics ----

func (s *catalogService) CreateTopic(dbc dbctx.Context, in CreateTopicInput) (out *types.Topic, err error) {
	defer func() { s.written(dbc, "topic", "create", idOf(out), err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.GetDomain(dbc, in.DomainID); err != nil {
		return nil, err
	}
	row := &types.Topic{
		DomainID:      in.DomainID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		OrderPosition: in.OrderPosition,
	}
	if _, err := s.topicRepo.Create(dbc, []*types.Topic{row}); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return row, nil
}

func (s *catalogService) UpdateTopic(dbc dbctx.Context, id uuid.UUID, in UpdateTopicInput) (out *types.Topic, err error) {
	defer func() { s.written(dbc, "topic", "update", id, err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.DomainID != nil {
		if _, err := s.GetDomain(dbc, *in.DomainID); err != nil {
			return nil, err
		}
	}
	row, err := s.topicRepo.UpdateFields(dbc, id, in.fields())
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("topic_not_found", "topic %s not found", id)
	}
	return row, nil
}

func (s *catalogService) DeleteTopic(dbc dbctx.Context, id uuid.UUID) (err error) {
	defer func() { s.written(dbc, "topic", "delete", id, err) }()
	ok, err := s.topicRepo.Delete(dbc, id)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	if !ok {
		return apierr.NotFound("topic_not_found", "topic %s not found", id)
	}
	return nil
}

// ---- content items ----

func (s *catalogService) CreateContentItem(dbc dbctx.Context, in CreateContentItemInput) (out *types.ContentItem, err error) {
	defer func() { s.written(dbc, "content_item", "create", idOf(out), err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.GetTopic(dbc, in.TopicID); err != nil {
		return nil, err
	}
	row := &types.ContentItem{
		TopicID:       in.TopicID,
		Type:          types.ContentType(in.Type),
		Name:          strings.TrimSpace(in.Name),
		Content:       in.Content,
		OrderPosition: in.OrderPosition,
	}
	if _, err := s.itemRepo.Create(dbc, []*types.ContentItem{row}); err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}
	return row, nil
}

func (s *catalogService) UpdateContentItem(dbc dbctx.Context, id uuid.UUID, in UpdateContentItemInput) (out *types.ContentItem, err error) {
	defer func() { s.written(dbc, "content_item", "update", id, err) }()
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.TopicID != nil {
		if _, err := s.GetTopic(dbc, *in.TopicID); err != nil {
			return nil, err
		}
	}
	row, err := s.itemRepo.UpdateFields(dbc, id, in.fields())
	if err != nil {
		return nil, fmt.Errorf("update content item: %w", err)
	}
	if row == nil {
		return nil, apierr.NotFound("content_item_not_found", "content item %s not found", id)
	}
	return row, nil
}

func (s *catalogService) DeleteContentItem(dbc dbctx.Context, id uuid.UUID) (err error) {
	defer func() { s.written(dbc, "content_item", "delete", id, err) }()
	ok, err := s.itemRepo.Delete(dbc, id)
	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	if !ok {
		return apierr.NotFound("content_item_not_found", "content item %s not found", id)
	}
	return nil
}

// ---- import ----

func (s *catalogService) Import(dbc dbctx.Context, doc CatalogDocument) (ImportSummary, error) {
	sum := ImportSummary{}
	if err := validateInput(doc); err != nil {
		return sum, err
	}

	run := func(tx *gorm.DB) error {
		txc := dbc.WithTx(tx)
		for _, d := range doc.Domains {
			domain := &types.Domain{
				Name:          strings.TrimSpace(d.Name),
				Description:   d.Description,
				Weight:        d.Weight,
				OrderPosition: d.OrderPosition,
			}
			if _, err := s.domainRepo.Create(txc, []*types.Domain{domain}); err != nil {
				return fmt.Errorf("import domain %q: %w", d.Name, err)
			}
			sum.Domains++
			for _, t := range d.Topics {
				topic := &types.Topic{
					DomainID:      domain.ID,
					Name:          strings.TrimSpace(t.Name),
					Description:   t.Description,
					OrderPosition: t.OrderPosition,
				}
				if _, err := s.topicRepo.Create(txc, []*types.Topic{topic}); err != nil {
					return fmt.Errorf("import topic %q: %w", t.Name, err)
				}
				sum.Topics++
				items := make([]*types.ContentItem, 0, len(t.Items))
				for _, it := range t.Items {
					items = append(items, &types.ContentItem{
						TopicID:       topic.ID,
						Type:          types.ContentType(it.Type),
						Name:          strings.TrimSpace(it.Name),
						Content:       it.Content,
						OrderPosition: it.OrderPosition,
					})
				}
				if _, err := s.itemRepo.Create(txc, items); err != nil {
					return fmt.Errorf("import items for topic %q: %w", t.Name, err)
				}
				sum.Items += len(items)
			}
		}
		return nil
	}

	var err error
	if dbc.Tx != nil {
		err = run(dbc.Tx)
	} else {
		err = s.db.WithContext(dbc.Context()).Transaction(run)
	}
	if err != nil {
		s.log.Error("catalog import failed", "error", err)
		return ImportSummary{}, err
	}
	s.log.Info("catalog imported", "domains", sum.Domains, "topics", sum.Topics, "items", sum.Items)
	if s.notifier != nil {
		s.notifier.CatalogChanged(dbc.Context(), "catalog", "import", uuid.Nil)
	}
	return sum, nil
}

func idOf[T types.Domain | types.Topic | types.ContentItem](row *T) uuid.UUID {
	if row == nil {
		return uuid.Nil
	}
	switch v := any(row).(type) {
	case *types.Domain:
		return v.ID
	case *types.Topic:
		return v.ID
	case *types.ContentItem:
		return v.ID
	}
	return uuid.Nil
}
