package catalog

import "testing"

func TestSortDomainsTiesKeepInsertionOrder(t *testing.T) {
	rows := []*Domain{
		{Name: "c", OrderPosition: 1, InsertSeq: 3},
		{Name: "b", OrderPosition: 0, InsertSeq: 2},
		{Name: "a", OrderPosition: 0, InsertSeq: 1},
	}
	SortDomains(rows)
	got := []string{rows[0].Name, rows[1].Name, rows[2].Name}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: want=%v got=%v", want, got)
		}
	}
}

func TestSortContentItemsGroupsByTypeFirst(t *testing.T) {
	rows := []*ContentItem{
		{Name: "glue", Type: ContentTypeAWSService, OrderPosition: 0},
		{Name: "batch", Type: ContentTypeConcept, OrderPosition: 1},
		{Name: "stream", Type: ContentTypeConcept, OrderPosition: 0},
		{Name: "sort", Type: ContentTypeAlgorithm, OrderPosition: 9},
	}
	SortContentItems(rows)
	want := []string{"sort", "glue", "stream", "batch"}
	for i, w := range want {
		if rows[i].Name != w {
			t.Fatalf("position %d: want=%s got=%s", i, w, rows[i].Name)
		}
	}
}

func TestParseContentType(t *testing.T) {
	if got, err := ParseContentType(" AWS_Service "); err != nil || got != ContentTypeAWSService {
		t.Fatalf("ParseContentType: got=%q err=%v", got, err)
	}
	if _, err := ParseContentType("video"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	for _, ct := range AllContentTypes() {
		if !ct.Valid() {
			t.Fatalf("%s should be valid", ct)
		}
	}
}

func TestNextInsertSeqStrictlyIncreases(t *testing.T) {
	prev := NextInsertSeq()
	for i := 0; i < 1000; i++ {
		next := NextInsertSeq()
		if next <= prev {
			t.Fatalf("sequence went backwards: %d then %d", prev, next)
		}
		prev = next
	}
}
