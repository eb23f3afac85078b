package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRequestDataRoundTrip(t *testing.T) {
	if got := UserID(context.Background()); got != uuid.Nil {
		t.Fatalf("expected nil user id, got %s", got)
	}
	id := uuid.New()
	ctx := WithRequestData(context.Background(), &RequestData{UserID: id})
	if got := UserID(ctx); got != id {
		t.Fatalf("user id: want=%s got=%s", id, got)
	}
}

func TestTraceDataRoundTrip(t *testing.T) {
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	td := GetTraceData(ctx)
	if td == nil || td.TraceID != "t" || td.RequestID != "r" {
		t.Fatalf("unexpected trace data: %+v", td)
	}
	if GetTraceData(nil) != nil {
		t.Fatalf("nil ctx should yield nil trace data")
	}
}
