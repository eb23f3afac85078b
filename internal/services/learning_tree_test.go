package services

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
)

type treeFixture struct {
	domains  []*types.Domain
	topics   []*types.Topic
	items    []*types.ContentItem
	progress map[uuid.UUID]map[uuid.UUID]*types.UserContentProgress
}

func (f *treeFixture) domain(name string, order int) *types.Domain {
	d := &types.Domain{ID: uuid.New(), Name: name, OrderPosition: order, InsertSeq: int64(len(f.domains) + 1)}
	f.domains = append(f.domains, d)
	return d
}

func (f *treeFixture) topic(d *types.Domain, name string, order int) *types.Topic {
	t := &types.Topic{ID: uuid.New(), DomainID: d.ID, Name: name, OrderPosition: order, InsertSeq: int64(len(f.topics) + 1)}
	f.topics = append(f.topics, t)
	return t
}

func (f *treeFixture) item(t *types.Topic, typ types.ContentType, name string, order int) *types.ContentItem {
	it := &types.ContentItem{ID: uuid.New(), TopicID: t.ID, Type: typ, Name: name, OrderPosition: order, InsertSeq: int64(len(f.items) + 1)}
	f.items = append(f.items, it)
	return it
}

func (f *treeFixture) mark(t *types.Topic, it *types.ContentItem, completed bool) *types.UserContentProgress {
	if f.progress == nil {
		f.progress = map[uuid.UUID]map[uuid.UUID]*types.UserContentProgress{}
	}
	if f.progress[t.ID] == nil {
		f.progress[t.ID] = map[uuid.UUID]*types.UserContentProgress{}
	}
	rec := &types.UserContentProgress{ID: uuid.New(), ContentItemID: it.ID, IsCompleted: completed}
	f.progress[t.ID][it.ID] = rec
	return rec
}

func (f *treeFixture) build() ([]types.DomainView, TreeStats) {
	return BuildLearningTree(f.domains, f.topics, f.items, f.progress)
}

func TestBuildLearningTreeExampleScenario(t *testing.T) {
	f := &treeFixture{}
	de := f.domain("Data Engineering", 0)
	etl := f.topic(de, "ETL", 0)
	item1 := f.item(etl, types.ContentTypeConcept, "Batch vs Stream", 0)
	item2 := f.item(etl, types.ContentTypeAWSService, "AWS Glue", 0)
	f.mark(etl, item1, true)

	tree, stats := f.build()
	require.Len(t, tree, 1)
	assert.Equal(t, "Data Engineering", tree[0].Name)
	require.Len(t, tree[0].Topics, 1)

	topic := tree[0].Topics[0]
	assert.Equal(t, "ETL", topic.Name)
	assert.Equal(t, types.ProgressSummary{Completed: 1, Total: 2, Percentage: 50}, topic.Progress)
	assert.Equal(t, types.ProgressSummary{Completed: 1, Total: 2, Percentage: 50}, tree[0].Progress)

	require.Len(t, topic.ContentItems, 2)
	concepts := topic.ContentItems[types.ContentTypeConcept]
	require.Len(t, concepts, 1)
	assert.Equal(t, item1.ID, concepts[0].ID)
	require.NotNil(t, concepts[0].Progress)
	assert.True(t, concepts[0].Progress.IsCompleted)

	aws := topic.ContentItems[types.ContentTypeAWSService]
	require.Len(t, aws, 1)
	assert.Equal(t, item2.ID, aws[0].ID)
	assert.Nil(t, aws[0].Progress)

	assert.Equal(t, TreeStats{Domains: 1, Topics: 1, Items: 2}, stats)
}

func TestBuildLearningTreeKeepsEmptyNodes(t *testing.T) {
	f := &treeFixture{}
	empty := f.domain("Governance", 1)
	withTopic := f.domain("Modeling", 0)
	bare := f.topic(withTopic, "Feature Stores", 0)

	tree, _ := f.build()
	require.Len(t, tree, 2)

	assert.Equal(t, withTopic.ID, tree[0].ID)
	require.Len(t, tree[0].Topics, 1)
	assert.Equal(t, bare.ID, tree[0].Topics[0].ID)
	assert.Equal(t, types.ProgressSummary{}, tree[0].Topics[0].Progress)
	assert.NotNil(t, tree[0].Topics[0].ContentItems)
	assert.Empty(t, tree[0].Topics[0].ContentItems)

	assert.Equal(t, empty.ID, tree[1].ID)
	assert.NotNil(t, tree[1].Topics)
	assert.Empty(t, tree[1].Topics)
	assert.Equal(t, types.ProgressSummary{Completed: 0, Total: 0, Percentage: 0}, tree[1].Progress)
}

func TestBuildLearningTreeRollUp(t *testing.T) {
	f := &treeFixture{}
	d := f.domain("MLOps", 0)
	t1 := f.topic(d, "Pipelines", 0)
	t2 := f.topic(d, "Monitoring", 1)
	a := f.item(t1, types.ContentTypeAWSService, "SageMaker Pipelines", 0)
	b := f.item(t1, types.ContentTypeFramework, "Kubeflow", 0)
	c := f.item(t1, types.ContentTypeConcept, "DAGs", 0)
	x := f.item(t2, types.ContentTypeAWSService, "Model Monitor", 0)
	f.item(t2, types.ContentTypeConcept, "Drift", 0)
	f.mark(t1, a, true)
	f.mark(t1, b, false)
	f.mark(t1, c, true)
	f.mark(t2, x, true)

	tree, _ := f.build()
	require.Len(t, tree, 1)
	sum := 0
	for _, tv := range tree[0].Topics {
		completed := 0
		for _, views := range tv.ContentItems {
			for _, v := range views {
				if v.Progress != nil && v.Progress.IsCompleted {
					completed++
				}
			}
		}
		assert.Equal(t, completed, tv.Progress.Completed, "topic %s", tv.Name)
		sum += tv.Progress.Completed
	}
	assert.Equal(t, sum, tree[0].Progress.Completed)
	assert.Equal(t, 5, tree[0].Progress.Total)
	assert.InDelta(t, 60.0, tree[0].Progress.Percentage, 1e-9)
	assert.InDelta(t, 200.0/3.0, tree[0].Topics[0].Progress.Percentage, 1e-9)
}

func TestBuildLearningTreeGroupsOnlyPresentTypes(t *testing.T) {
	f := &treeFixture{}
	d := f.domain("Foundations", 0)
	topic := f.topic(d, "Optimization", 0)
	f.item(topic, types.ContentTypeConcept, "Loss surfaces", 1)
	f.item(topic, types.ContentTypeAlgorithm, "Adam", 0)
	f.item(topic, types.ContentTypeConcept, "Learning rate", 0)

	tree, _ := f.build()
	groups := tree[0].Topics[0].ContentItems
	keys := []types.ContentType{}
	for k := range groups {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []types.ContentType{types.ContentTypeConcept, types.ContentTypeAlgorithm}, keys)
	assert.NotContains(t, groups, types.ContentTypeAWSService)
	assert.NotContains(t, groups, types.ContentTypeFramework)

	concepts := groups[types.ContentTypeConcept]
	require.Len(t, concepts, 2)
	assert.Equal(t, "Learning rate", concepts[0].Name)
	assert.Equal(t, "Loss surfaces", concepts[1].Name)
}

func TestBuildLearningTreeIgnoresInputOrder(t *testing.T) {
	f := &treeFixture{}
	for i := 0; i < 4; i++ {
		d := f.domain("D", i%2)
		for j := 0; j < 3; j++ {
			topic := f.topic(d, "T", j%2)
			for k, typ := range types.AllContentTypes() {
				it := f.item(topic, typ, "I", k%2)
				if k%2 == 0 {
					f.mark(topic, it, true)
				}
			}
		}
	}
	want, _ := f.build()

	shuffled := &treeFixture{progress: f.progress}
	shuffled.domains = append(shuffled.domains, f.domains...)
	shuffled.topics = append(shuffled.topics, f.topics...)
	shuffled.items = append(shuffled.items, f.items...)
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(shuffled.domains), func(i, j int) {
		shuffled.domains[i], shuffled.domains[j] = shuffled.domains[j], shuffled.domains[i]
	})
	r.Shuffle(len(shuffled.topics), func(i, j int) {
		shuffled.topics[i], shuffled.topics[j] = shuffled.topics[j], shuffled.topics[i]
	})
	r.Shuffle(len(shuffled.items), func(i, j int) {
		shuffled.items[i], shuffled.items[j] = shuffled.items[j], shuffled.items[i]
	})
	got, _ := shuffled.build()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree depends on input order (-want +got):\n%s", diff)
	}
}

func TestBuildLearningTreeSkipsOrphans(t *testing.T) {
	f := &treeFixture{}
	d := f.domain("Data Engineering", 0)
	topic := f.topic(d, "ETL", 0)
	kept := f.item(topic, types.ContentTypeConcept, "Batch", 0)
	f.mark(topic, kept, true)
	gone := &types.ContentItem{ID: uuid.New(), TopicID: topic.ID}
	f.mark(topic, gone, true)

	tree, stats := f.build()
	assert.Equal(t, 1, stats.Orphans)
	assert.Equal(t, types.ProgressSummary{Completed: 1, Total: 1, Percentage: 100}, tree[0].Topics[0].Progress)
}

func TestBuildLearningTreeDoesNotMutateInputs(t *testing.T) {
	f := &treeFixture{}
	d2 := f.domain("Second", 2)
	d1 := f.domain("First", 1)
	f.topic(d1, "Only", 0)

	before := []uuid.UUID{f.domains[0].ID, f.domains[1].ID}
	tree, _ := f.build()
	assert.Equal(t, []uuid.UUID{d2.ID, d1.ID}, before)
	assert.Equal(t, before, []uuid.UUID{f.domains[0].ID, f.domains[1].ID})
	assert.Equal(t, d1.ID, tree[0].ID)
}
