package progress

import (
	"encoding/json"
	"testing"
)

func TestOptionalFieldsTrackPresence(t *testing.T) {
	var req struct {
		Notes  OptionalString `json:"notes"`
		Videos OptionalVideos `json:"videos"`
	}
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Notes.Set || req.Videos.Set {
		t.Fatalf("omitted fields must stay unset: %+v", req)
	}

	if err := json.Unmarshal([]byte(`{"notes":null,"videos":[{"url":"u","title":"t"}]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.Notes.Set || req.Notes.Value != nil {
		t.Fatalf("explicit null notes: %+v", req.Notes)
	}
	if !req.Videos.Set || len(req.Videos.Value) != 1 || req.Videos.Value[0].URL != "u" {
		t.Fatalf("videos: %+v", req.Videos)
	}
}

func TestPatchColumnsAndApply(t *testing.T) {
	done := true
	p := Patch{IsCompleted: &done, Notes: SomeString("x")}
	cols := p.Columns()
	want := []string{"is_completed", "notes", "last_updated"}
	if len(cols) != len(want) {
		t.Fatalf("columns: want=%v got=%v", want, cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("columns: want=%v got=%v", want, cols)
		}
	}

	row := &UserContentProgress{Videos: []Video{{URL: "keep"}}}
	p.Apply(row)
	if !row.IsCompleted || row.Notes == nil || *row.Notes != "x" {
		t.Fatalf("apply: %+v", row)
	}
	if len(row.Videos) != 1 || row.Videos[0].URL != "keep" {
		t.Fatalf("unset videos must survive: %+v", row.Videos)
	}

	if got := (Patch{}).Columns(); len(got) != 1 || got[0] != "last_updated" {
		t.Fatalf("empty patch columns: %v", got)
	}
}
