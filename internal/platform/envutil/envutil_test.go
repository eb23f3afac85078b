package envutil

import (
	"testing"
	"time"
)

func TestDefaultsWhenUnset(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_UNSET", "")
	if got := String("ENVUTIL_TEST_UNSET", "x", nil); got != "x" {
		t.Fatalf("String: got %q", got)
	}
	if got := Int("ENVUTIL_TEST_UNSET", 7, nil); got != 7 {
		t.Fatalf("Int: got %d", got)
	}
	if got := Bool("ENVUTIL_TEST_UNSET", true, nil); !got {
		t.Fatalf("Bool: got %v", got)
	}
}

func TestParsing(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	t.Setenv("ENVUTIL_TEST_BAD_INT", "forty")
	t.Setenv("ENVUTIL_TEST_BOOL", "off")
	t.Setenv("ENVUTIL_TEST_DUR", "750ms")
	t.Setenv("ENVUTIL_TEST_DUR_SECS", "3")
	t.Setenv("ENVUTIL_TEST_LIST", " a, ,b ")
	t.Setenv("ENVUTIL_TEST_FLOAT", "0.25")

	if got := Int("ENVUTIL_TEST_INT", 0, nil); got != 42 {
		t.Fatalf("Int: got %d", got)
	}
	if got := Int("ENVUTIL_TEST_BAD_INT", 5, nil); got != 5 {
		t.Fatalf("Int fallback: got %d", got)
	}
	if got := Bool("ENVUTIL_TEST_BOOL", true, nil); got {
		t.Fatalf("Bool: got %v", got)
	}
	if got := Duration("ENVUTIL_TEST_DUR", time.Second, nil); got != 750*time.Millisecond {
		t.Fatalf("Duration: got %s", got)
	}
	if got := Duration("ENVUTIL_TEST_DUR_SECS", time.Second, nil); got != 3*time.Second {
		t.Fatalf("Duration seconds: got %s", got)
	}
	if got := Float("ENVUTIL_TEST_FLOAT", 1, nil); got != 0.25 {
		t.Fatalf("Float: got %v", got)
	}
	got := List("ENVUTIL_TEST_LIST", nil, nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("List: got %v", got)
	}
}
