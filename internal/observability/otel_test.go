package observability

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc , broken, =x, team=ml ")
	if len(got) != 2 || got["api-key"] != "abc" || got["team"] != "ml" {
		t.Fatalf("ParseHeaders: %v", got)
	}
	if ParseHeaders("") != nil {
		t.Fatalf("empty headers should be nil")
	}
}

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0.25: 0.25, 3: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v) = %v want %v", in, got, want)
		}
	}
}

func TestInitOTelDisabledReturnsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("shutdown func must not be nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}
