package services

import (
	"github.com/google/uuid"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain/learning/catalog"
)

// TreeStats describes what a fold consumed.
type TreeStats struct {
	Domains int
	Topics  int
	Items   int
	// Orphans counts progress records whose item was not in the catalog.
	Orphans int
}

// BuildLearningTree assembles the per-user tree from flat catalog rows and
// the user's progress keyed by topic id then content item id. It never
// mutates its inputs and its output order depends only on catalog ordering,
// not on the order rows arrive in.
func BuildLearningTree(
	domains []*types.Domain,
	topics []*types.Topic,
	items []*types.ContentItem,
	progressByTopic map[uuid.UUID]map[uuid.UUID]*types.UserContentProgress,
) ([]types.DomainView, TreeStats) {
	stats := TreeStats{}

	orderedDomains := compact(domains)
	catalog.SortDomains(orderedDomains)

	topicsByDomain := map[uuid.UUID][]*types.Topic{}
	for _, t := range compact(topics) {
		topicsByDomain[t.DomainID] = append(topicsByDomain[t.DomainID], t)
	}
	itemsByTopic := map[uuid.UUID][]*types.ContentItem{}
	for _, it := range compact(items) {
		itemsByTopic[it.TopicID] = append(itemsByTopic[it.TopicID], it)
	}

	out := make([]types.DomainView, 0, len(orderedDomains))
	for _, d := range orderedDomains {
		dv := types.DomainView{
			Domain:   *d,
			Topics:   []types.TopicView{},
			Progress: types.ProgressSummary{},
		}
		domainTopics := topicsByDomain[d.ID]
		catalog.SortTopics(domainTopics)
		for _, t := range domainTopics {
			tv, orphans := buildTopicView(t, itemsByTopic[t.ID], progressByTopic[t.ID])
			stats.Topics++
			stats.Items += tv.Progress.Total
			stats.Orphans += orphans
			dv.Topics = append(dv.Topics, tv)
			dv.Progress = dv.Progress.Add(tv.Progress)
		}
		stats.Domains++
		out = append(out, dv)
	}
	return out, stats
}

func buildTopicView(t *types.Topic, items []*types.ContentItem, records map[uuid.UUID]*types.UserContentProgress) (types.TopicView, int) {
	catalog.SortContentItems(items)

	tv := types.TopicView{
		Topic:        *t,
		ContentItems: map[types.ContentType][]types.ContentItemView{},
	}
	completed := 0
	attached := 0
	for _, it := range items {
		view := types.ContentItemView{ContentItem: *it}
		if rec, ok := records[it.ID]; ok && rec != nil {
			view.Progress = rec
			attached++
			if rec.IsCompleted {
				completed++
			}
		}
		tv.ContentItems[it.Type] = append(tv.ContentItems[it.Type], view)
	}
	tv.Progress = types.NewProgressSummary(completed, len(items))

	orphans := 0
	for _, rec := range records {
		if rec != nil {
			orphans++
		}
	}
	return tv, orphans - attached
}

// compact copies rows without nils so sorting leaves the caller's slice alone.
func compact[T any](rows []*T) []*T {
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
