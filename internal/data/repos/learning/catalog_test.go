package learning

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/data/repos/testutil"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
)

func TestDomainRepoOrdering(t *testing.T) {
	db := testutil.SQLite(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDomainRepo(db, testutil.Logger(t))

	late := testutil.SeedDomain(t, ctx, tx, "Operations", 3)
	first := testutil.SeedDomain(t, ctx, tx, "Data Engineering", 1)
	tieA := testutil.SeedDomain(t, ctx, tx, "Modeling", 2)
	tieB := testutil.SeedDomain(t, ctx, tx, "Security", 2)

	rows, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []uuid.UUID{first.ID, tieA.ID, tieB.ID, late.ID}
	if len(rows) != len(want) {
		t.Fatalf("List: len=%d want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("List[%d]: got %s (%s) want %s", i, rows[i].Name, rows[i].ID, id)
		}
	}
}

func TestDomainRepoCRUD(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDomainRepo(db, testutil.Logger(t))

	desc := "pipelines and storage"
	d := &types.Domain{Name: "Data Engineering", Description: &desc, Weight: 20, OrderPosition: 1}
	if _, err := repo.Create(dbc, []*types.Domain{d}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Fatalf("Create: id not assigned")
	}

	got, err := repo.GetByID(dbc, d.ID)
	if err != nil || got == nil || got.Name != "Data Engineering" {
		t.Fatalf("GetByID: err=%v row=%+v", err, got)
	}
	if missing, err := repo.GetByID(dbc, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID missing: err=%v row=%+v", err, missing)
	}

	updated, err := repo.UpdateFields(dbc, d.ID, map[string]interface{}{"weight": 30})
	if err != nil || updated == nil || updated.Weight != 30 {
		t.Fatalf("UpdateFields: err=%v row=%+v", err, updated)
	}
	if updated.Name != "Data Engineering" {
		t.Fatalf("UpdateFields touched name: %q", updated.Name)
	}
	if none, err := repo.UpdateFields(dbc, uuid.New(), map[string]interface{}{"weight": 1}); err != nil || none != nil {
		t.Fatalf("UpdateFields missing: err=%v row=%+v", err, none)
	}

	if ok, err := repo.Delete(dbc, d.ID); err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Delete(dbc, d.ID); err != nil || ok {
		t.Fatalf("Delete again: ok=%v err=%v", ok, err)
	}
}

func TestTopicRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTopicRepo(db, testutil.Logger(t))

	d1 := testutil.SeedDomain(t, ctx, tx, "Data Engineering", 1)
	d2 := testutil.SeedDomain(t, ctx, tx, "Modeling", 2)
	etl := testutil.SeedTopic(t, ctx, tx, d1.ID, "ETL", 2)
	ingest := testutil.SeedTopic(t, ctx, tx, d1.ID, "Ingestion", 1)
	tuning := testutil.SeedTopic(t, ctx, tx, d2.ID, "Tuning", 1)

	rows, err := repo.ListByDomainID(dbc, d1.ID)
	if err != nil {
		t.Fatalf("ListByDomainID: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != ingest.ID || rows[1].ID != etl.ID {
		t.Fatalf("ListByDomainID: unexpected order %+v", rows)
	}

	if rows, err := repo.ListByDomainID(dbc, uuid.New()); err != nil || len(rows) != 0 {
		t.Fatalf("ListByDomainID unknown: err=%v len=%d", err, len(rows))
	}

	all, err := repo.ListByDomainIDs(dbc, []uuid.UUID{d1.ID, d2.ID})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListByDomainIDs: err=%v len=%d", err, len(all))
	}
	seen := map[uuid.UUID]bool{}
	for _, r := range all {
		seen[r.ID] = true
	}
	if !seen[etl.ID] || !seen[ingest.ID] || !seen[tuning.ID] {
		t.Fatalf("ListByDomainIDs: missing rows %+v", all)
	}
	if rows, err := repo.ListByDomainIDs(dbc, nil); err != nil || len(rows) != 0 {
		t.Fatalf("ListByDomainIDs empty: err=%v len=%d", err, len(rows))
	}

	if got, err := repo.GetByID(dbc, tuning.ID); err != nil || got == nil || got.DomainID != d2.ID {
		t.Fatalf("GetByID: err=%v row=%+v", err, got)
	}

	if ok, err := NewDomainRepo(db, testutil.Logger(t)).Delete(dbc, d2.ID); err != nil || !ok {
		t.Fatalf("delete parent domain: ok=%v err=%v", ok, err)
	}
	if got, err := repo.GetByID(dbc, tuning.ID); err != nil || got != nil {
		t.Fatalf("topic survived domain delete: err=%v row=%+v", err, got)
	}
}

func TestContentItemRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewContentItemRepo(db, testutil.Logger(t))

	d := testutil.SeedDomain(t, ctx, tx, "Data Engineering", 1)
	topic := testutil.SeedTopic(t, ctx, tx, d.ID, "ETL", 1)
	other := testutil.SeedTopic(t, ctx, tx, d.ID, "Streaming", 2)

	glue := testutil.SeedContentItem(t, ctx, tx, topic.ID, types.ContentTypeAWSService, "Glue", 2)
	spark := testutil.SeedContentItem(t, ctx, tx, topic.ID, types.ContentTypeFramework, "Spark", 1)
	emr := testutil.SeedContentItem(t, ctx, tx, topic.ID, types.ContentTypeAWSService, "EMR", 1)
	batch := testutil.SeedContentItem(t, ctx, tx, topic.ID, types.ContentTypeConcept, "Batch", 1)
	kinesis := testutil.SeedContentItem(t, ctx, tx, other.ID, types.ContentTypeAWSService, "Kinesis", 1)

	rows, err := repo.ListByTopicID(dbc, topic.ID)
	if err != nil {
		t.Fatalf("ListByTopicID: %v", err)
	}
	want := []uuid.UUID{emr.ID, glue.ID, batch.ID, spark.ID}
	if len(rows) != len(want) {
		t.Fatalf("ListByTopicID: len=%d want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("ListByTopicID[%d]: got %s want %s", i, rows[i].Name, id)
		}
	}

	if rows, err := repo.ListByTopicID(dbc, uuid.New()); err != nil || len(rows) != 0 {
		t.Fatalf("ListByTopicID unknown: err=%v len=%d", err, len(rows))
	}

	both, err := repo.ListByTopicIDs(dbc, []uuid.UUID{topic.ID, other.ID})
	if err != nil || len(both) != 5 {
		t.Fatalf("ListByTopicIDs: err=%v len=%d", err, len(both))
	}
	if rows, err := repo.ListByTopicIDs(dbc, []uuid.UUID{}); err != nil || len(rows) != 0 {
		t.Fatalf("ListByTopicIDs empty: err=%v len=%d", err, len(rows))
	}

	aws, err := repo.ListByTopicIDAndType(dbc, topic.ID, types.ContentTypeAWSService)
	if err != nil || len(aws) != 2 || aws[0].ID != emr.ID || aws[1].ID != glue.ID {
		t.Fatalf("ListByTopicIDAndType: err=%v rows=%+v", err, aws)
	}
	if rows, err := repo.ListByTopicIDAndType(dbc, topic.ID, types.ContentType("video")); err != nil || len(rows) != 0 {
		t.Fatalf("ListByTopicIDAndType invalid type: err=%v len=%d", err, len(rows))
	}

	updated, err := repo.UpdateFields(dbc, kinesis.ID, map[string]interface{}{"order_position": 5})
	if err != nil || updated == nil || updated.OrderPosition != 5 {
		t.Fatalf("UpdateFields: err=%v row=%+v", err, updated)
	}

	if ok, err := repo.Delete(dbc, kinesis.ID); err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if got, err := repo.GetByID(dbc, kinesis.ID); err != nil || got != nil {
		t.Fatalf("GetByID after delete: err=%v row=%+v", err, got)
	}
}
