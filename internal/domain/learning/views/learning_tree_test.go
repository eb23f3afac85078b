package views

import "testing"

func TestProgressSummary(t *testing.T) {
	if got := NewProgressSummary(0, 0); got.Percentage != 0 {
		t.Fatalf("zero total: %+v", got)
	}
	if got := NewProgressSummary(1, 2); got.Percentage != 50 {
		t.Fatalf("half: %+v", got)
	}
	sum := NewProgressSummary(1, 2).Add(NewProgressSummary(1, 2)).Add(ProgressSummary{})
	if sum.Completed != 2 || sum.Total != 4 || sum.Percentage != 50 {
		t.Fatalf("add: %+v", sum)
	}
}
