package validate

import (
	"testing"

	"github.com/sprig-lang/sprig/internal/common/failure"
)

func mismatched(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()

		err, ok := r.(error)
		if !ok || !failure.Is(err, failure.ArityMismatch) {
			t.Fatalf("expected arity mismatch, got %v", r)
		}
	}()

	f()
}

func TestCount(t *testing.T) {
	if s := Count(1, "argument", "s"); s != "1 argument" {
		t.Fatalf("unexpected %q", s)
	}

	if s := Count(2, "argument", "s"); s != "2 arguments" {
		t.Fatalf("unexpected %q", s)
	}
}

func TestFixed(t *testing.T) {
	if v := Fixed("f", []any{1, 2}, 1, 2); len(v) != 2 {
		t.Fatalf("expected 2 args, got %d", len(v))
	}

	mismatched(t, func() { Fixed("f", []any{1, 2, 3}, 1, 2) })
	mismatched(t, func() { Fixed("f", nil, 1, 2) })
}

func TestVariadic(t *testing.T) {
	v, rest := Variadic("g", []any{1, 2, 3}, 1, 2)
	if len(v) != 2 || len(rest) != 1 {
		t.Fatalf("expected 2 and 1, got %d and %d", len(v), len(rest))
	}

	v, rest = Variadic("g", []any{1}, 1, 2)
	if len(v) != 1 || rest != nil {
		t.Fatalf("expected 1 and none, got %d and %d", len(v), len(rest))
	}

	mismatched(t, func() { Variadic("g", nil, 1, 1) })
}
