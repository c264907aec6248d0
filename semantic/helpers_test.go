package semantic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *semantic.Sequence { return semantic.Numbers(ns...) }

func seqOf(t *testing.T, xs ...any) *semantic.Sequence {
	t.Helper()
	s, err := semantic.SequenceOf(xs...)
	if err != nil {
		t.Fatalf("SequenceOf: %v", err)
	}
	return s
}

func mapOf(t *testing.T, src map[string]any) *semantic.Mapping {
	t.Helper()
	m, err := semantic.MappingFrom(src)
	if err != nil {
		t.Fatalf("MappingFrom: %v", err)
	}
	return m
}

// assertSeq compares the plain Go form of got against want, which is
// converted with MustFrom first so untyped literals line up.
func assertSeq(t *testing.T, got *semantic.Sequence, want ...any) {
	t.Helper()
	if want == nil {
		want = []any{}
	}
	if diff := cmp.Diff(semantic.MustFrom(want).Interface(), got.Interface()); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func assertKeys(t *testing.T, m *semantic.Mapping, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
