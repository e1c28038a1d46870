package host

import (
	"testing"

	"github.com/sprig-lang/sprig/internal/common/failure"
)

func TestClassInstances(t *testing.T) {
	r := New()

	for _, c := range []struct {
		class    string
		value    any
		expected bool
	}{
		{"Object", "x", true},
		{"Object", nil, false},
		{"String", "x", true},
		{"String", int64(1), false},
		{"Long", int64(1), true},
		{"Double", 1.5, true},
		{"Boolean", false, true},
		{"Exception", failure.Type.New("bad"), true},
		{"Throwable", failure.Throw("x"), true},
		{"TypeError", failure.Type.New("bad"), true},
		{"TypeError", failure.Syntax.New("bad"), false},
		{"ExceptionInfo", failure.Info.New("boom"), true},
		{"ExceptionInfo", failure.Type.New("bad"), false},
	} {
		cls := r.ResolveClass(c.class)
		if cls == nil {
			t.Fatalf("class %s not found", c.class)
		}

		if actual := cls.IsInstance(c.value); actual != c.expected {
			t.Fatalf("%s.IsInstance(%v): expected %v, got %v", c.class, c.value, c.expected, actual)
		}
	}
}

func TestClassOf(t *testing.T) {
	r := New()

	if c := r.ClassOf("x"); c == nil || c.Text() != "String" {
		t.Fatalf("expected String, got %v", c)
	}

	if c := r.ClassOf(failure.Syntax.New("bad")); c == nil || c.Text() != "SyntaxError" {
		t.Fatalf("expected SyntaxError, got %v", c)
	}

	if c := r.ClassOf(nil); c != nil {
		t.Fatalf("expected no class for nil, got %v", c)
	}
}

func TestConstruct(t *testing.T) {
	r := New()

	sb, err := r.Construct(r.ResolveClass("StringBuilder"), []any{"a"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err = r.InvokeMember(sb, "append", []any{int64(1)}); err != nil {
		t.Fatal(err)
	}

	s, err := r.InvokeMember(sb, "toString", nil)
	if err != nil || s != "a1" {
		t.Fatalf("expected a1, got %v, %v", s, err)
	}

	n, err := r.InvokeMember(sb, "length", nil)
	if err != nil || n != int64(2) {
		t.Fatalf("expected 2, got %v, %v", n, err)
	}

	_, err = r.Construct(r.ResolveClass("Math"), nil)
	if !failure.Is(err, failure.Interop) {
		t.Fatalf("expected interop error, got %v", err)
	}
}

func TestInstanceHelpers(t *testing.T) {
	r := New()

	v, err := r.InvokeMember("hello", "toUpperCase", nil)
	if err != nil || v != "HELLO" {
		t.Fatalf("expected HELLO, got %v, %v", v, err)
	}

	v, err = r.InvokeMember("hello", "substring", []any{int64(1), int64(3)})
	if err != nil || v != "el" {
		t.Fatalf("expected el, got %v, %v", v, err)
	}

	_, err = r.InvokeMember("hello", "substring", []any{int64(9)})
	if !failure.Is(err, failure.Interop) {
		t.Fatalf("expected interop error, got %v", err)
	}

	_, err = r.InvokeMember("hello", "frobnicate", nil)
	if !failure.Is(err, failure.Interop) {
		t.Fatalf("expected interop error, got %v", err)
	}
}

func TestNewestHelperWins(t *testing.T) {
	r := New()

	r.Helper(r.ResolveClass("Object"), "describe", func(v any) string {
		return "object"
	})
	r.Helper(r.ResolveClass("String"), "describe", func(s string) string {
		return "string"
	})

	for i := 0; i < 20; i++ {
		v, err := r.InvokeMember("x", "describe", nil)
		if err != nil || v != "string" {
			t.Fatalf("expected string, got %v, %v", v, err)
		}
	}

	v, err := r.InvokeMember(int64(1), "describe", nil)
	if err != nil || v != "object" {
		t.Fatalf("expected object, got %v, %v", v, err)
	}
}

func TestStatics(t *testing.T) {
	r := New()
	m := r.ResolveClass("Math")

	v, err := r.InvokeMember(m, "max", []any{int64(3), 4.5})
	if err != nil || v != 4.5 {
		t.Fatalf("expected 4.5, got %v, %v", v, err)
	}

	v, err = r.InvokeMember(m, "abs", []any{int64(-3)})
	if err != nil || v != int64(3) {
		t.Fatalf("expected 3, got %v, %v", v, err)
	}

	pi, err := r.ReadStaticField(m, "PI")
	if err != nil || pi.(float64) < 3.14 {
		t.Fatalf("expected PI, got %v, %v", pi, err)
	}

	if _, err = r.ReadStaticField(m, "TAU"); !failure.Is(err, failure.Interop) {
		t.Fatalf("expected interop error, got %v", err)
	}

	if _, err = r.InvokeMember(m, "sqrt", []any{"four"}); !failure.Is(err, failure.Interop) {
		t.Fatalf("expected interop error, got %v", err)
	}

	if _, err = r.InvokeMember(m, "sqrt", nil); !failure.Is(err, failure.ArityMismatch) {
		t.Fatalf("expected arity mismatch, got %v", err)
	}
}

func TestSystem(t *testing.T) {
	r := New()
	s := r.ResolveClass("System")

	pid, err := r.InvokeMember(s, "getpid", nil)
	if err != nil || pid.(int64) <= 0 {
		t.Fatalf("expected a pid, got %v, %v", pid, err)
	}
}
