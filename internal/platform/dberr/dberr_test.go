package dberr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("syntax error"), false},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), true},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"already classified", fmt.Errorf("x: %w", ErrNotReachable), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			if IsNotReachable(got) != tc.want {
				t.Fatalf("IsNotReachable(Classify(%v)) = %v, want %v", tc.err, !tc.want, tc.want)
			}
			if tc.err != nil && !errors.Is(got, tc.err) {
				t.Fatalf("classified error lost its cause: %v", got)
			}
		})
	}
}
