package commands

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/kw"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/engine/node"
	"github.com/sprig-lang/sprig/internal/host"
	"github.com/sprig-lang/sprig/internal/namespace"
	"github.com/sprig-lang/sprig/internal/reader"
)

func call(t *testing.T, name string, fn func([]any) (any, error), args ...any) (any, error) {
	t.Helper()

	return node.NewNative(name, fn).Invoke(args)
}

func check(t *testing.T, name string, fn func([]any) (any, error), expected string, args ...any) {
	t.Helper()

	v, err := call(t, name, fn, args...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}

	if s := literal.String(v); s != expected {
		t.Fatalf("%s: expected %s, got %s", name, expected, s)
	}
}

func fails(t *testing.T, name string, fn func([]any) (any, error), expected *errorx.Type, args ...any) {
	t.Helper()

	if _, err := call(t, name, fn, args...); !failure.Is(err, expected) {
		t.Fatalf("%s: expected %s, got %v", name, expected.FullName(), err)
	}
}

func form(t *testing.T, src string) any {
	t.Helper()

	forms, err := reader.ReadAll("test", src)
	if err != nil || len(forms) != 1 {
		t.Fatalf("%s: expected one form, got %v", src, err)
	}

	return forms[0]
}

func TestArithmetic(t *testing.T) {
	check(t, "+", add, "0")
	check(t, "+", add, "6", int64(1), int64(2), int64(3))
	check(t, "+", add, "3.5", int64(1), 2.5)
	check(t, "+", add, "9223372036854775808N", int64(9223372036854775807), int64(1))
	check(t, "*", mul, "1")
	check(t, "*", mul, "24", int64(2), int64(3), int64(4))
	check(t, "-", sub, "-5", int64(5))
	check(t, "-", sub, "7", int64(10), int64(1), int64(2))
	check(t, "quot", quot, "3", int64(7), int64(2))
	check(t, "quot", quot, "3.0", 7.5, int64(2))
	check(t, "rem", rem, "-1", int64(-7), int64(2))

	big1 := new(big.Int).Lsh(big.NewInt(1), 70)
	check(t, "+", add, "1180591620717411303425N", big1, int64(1))

	fails(t, "quot", quot, failure.Type, int64(1), int64(0))
	fails(t, "+", add, failure.Type, int64(1), "a")
	fails(t, "-", sub, failure.ArityMismatch)
	fails(t, "rem", rem, failure.ArityMismatch, int64(1))
}

func TestRelational(t *testing.T) {
	check(t, "<", lt, "true", int64(1), int64(2), int64(3))
	check(t, "<", lt, "false", int64(1), int64(3), int64(2))
	check(t, "<=", le, "true", int64(1), int64(1), 2.5)
	check(t, ">", gt, "true", int64(3), int64(2))
	check(t, ">=", ge, "false", int64(1), int64(2))
	check(t, "==", numEq, "true", int64(2), 2.0)
	check(t, "=", eq, "true", vec.New(int64(1)), list.New(int64(1)))
	check(t, "=", eq, "false", "a", sym.New("", "a"))
	check(t, "not=", notEq, "true", kw.New("a"), kw.New("b"))
	check(t, "=", eq, "true", nil)

	fails(t, "<", lt, failure.Type, int64(1), "a")
	fails(t, "<", lt, failure.Type, "a")
	fails(t, "=", eq, failure.ArityMismatch)
}

func TestCollections(t *testing.T) {
	l := list.New(int64(1), int64(2), int64(3))
	v := vec.New(int64(1), int64(2))
	m := hmap.New(kw.New("a"), int64(1))

	check(t, "first", first, "1", l)
	check(t, "first", first, "nil", nil)
	check(t, "first", first, `"a"`, "ab")
	check(t, "rest", rest, "(2 3)", l)
	check(t, "rest", rest, "()", nil)
	check(t, "next", next, "nil", list.New(int64(1)))
	check(t, "next", next, "(2)", v)
	check(t, "count", count, "3", l)
	check(t, "count", count, "0", nil)
	check(t, "count", count, "2", "éa")
	check(t, "empty?", isEmpty, "true", vec.New())
	check(t, "cons", cons, "(0 1 2)", int64(0), v)
	check(t, "cons", cons, "(0)", int64(0), nil)
	check(t, "conj", conj, "(0 1 2 3)", l, int64(0))
	check(t, "conj", conj, "[1 2 3]", v, int64(3))
	check(t, "conj", conj, "(2 1)", nil, int64(1), int64(2))
	check(t, "conj", conj, "{:a 1, :b 2}", m, vec.New(kw.New("b"), int64(2)))
	check(t, "assoc", assoc, "{:a 2}", m, kw.New("a"), int64(2))
	check(t, "assoc", assoc, "[1 9]", v, int64(1), int64(9))
	check(t, "assoc", assoc, "{:x 1}", nil, kw.New("x"), int64(1))
	check(t, "get", get, "1", m, kw.New("a"))
	check(t, "get", get, ":none", m, kw.New("b"), kw.New("none"))
	check(t, "get", get, "2", v, int64(1))
	check(t, "nth", nth, "3", l, int64(2))
	check(t, "nth", nth, ":d", l, int64(5), kw.New("d"))
	check(t, "seq", seq, "nil", vec.New())
	check(t, "seq", seq, "(1 2)", v)
	check(t, "hash-map", hashMap, "{:a 1}", kw.New("a"), int64(1))
	check(t, "list", makeList, "()")
	check(t, "vector", vector, "[nil]", nil)

	fails(t, "nth", nth, failure.Type, v, int64(5))
	fails(t, "nth", nth, failure.Type, v, "x")
	fails(t, "assoc", assoc, failure.Type, v, int64(7), int64(1))
	fails(t, "assoc", assoc, failure.Type, m, kw.New("a"), int64(1), kw.New("b"))
	fails(t, "assoc", assoc, failure.ArityMismatch, m, kw.New("a"))
	fails(t, "conj", conj, failure.Type, m, int64(1))
	fails(t, "hash-map", hashMap, failure.Type, kw.New("a"))
	fails(t, "count", count, failure.Type, int64(1))
	fails(t, "first", first, failure.Type, int64(1))
}

func TestCore(t *testing.T) {
	check(t, "identity", identity, ":x", kw.New("x"))
	check(t, "nil?", isNil, "true", nil)
	check(t, "nil?", isNil, "false", false)
	check(t, "type", typeOf, `"vector"`, vec.New())
	check(t, "apply", apply, "10", node.NewNative("+", add), int64(1), list.New(int64(2), int64(3), int64(4)))
	check(t, "apply", apply, "0", node.NewNative("+", add), nil)
	check(t, "apply", apply, "2", kw.New("a"), vec.New(hmap.New(kw.New("a"), int64(2))))

	fails(t, "apply", apply, failure.Type, int64(1), nil)
	fails(t, "apply", apply, failure.ArityMismatch, node.NewNative("+", add))

	info, err := call(t, "ex-info", exInfo, "bad", hmap.New(kw.New("k"), int64(1)))
	if err != nil {
		t.Fatal(err)
	}

	check(t, "ex-data", exData, "{:k 1}", info)
	check(t, "ex-message", exMessage, `"bad"`, info)
	check(t, "ex-data", exData, "nil", "not an error")

	fails(t, "ex-info", exInfo, failure.Type, int64(1), nil)
	fails(t, "ex-info", exInfo, failure.Type, "m", int64(1))
}

func TestVars(t *testing.T) {
	store := namespace.NewStore("core")
	v := store.Core().LookupOrIntern("x", true)

	fails(t, "deref", deref, failure.Resolution, v)

	v.Set(int64(1))

	check(t, "deref", deref, "1", v)
	check(t, "set-macro!", setMacro, "#'core/x", v)
	check(t, "set-private!", setPrivate, "#'core/x", v)

	if !v.IsMacro() || !v.IsPrivate() {
		t.Fatal("expected var to be a private macro")
	}

	fails(t, "deref", deref, failure.Type, int64(1))

	e := &Env{Host: host.New(), Out: &bytes.Buffer{}, Store: store}

	check(t, "in-ns", e.inNs, "#namespace[other]", sym.New("", "other"))
	check(t, "alias", e.alias, "nil", sym.New("", "c"), sym.New("", "core"))
	fails(t, "alias", e.alias, failure.Resolution, sym.New("", "m"), sym.New("", "missing"))

	check(t, "class", e.class, "Long", int64(1))
	check(t, "instance?", isInstance, "true", e.Host.ResolveClass("String"), "s")
	fails(t, "instance?", isInstance, failure.Type, "String", "s")
}

func TestNames(t *testing.T) {
	check(t, "symbol", symbol, "a", "a")
	check(t, "symbol", symbol, "n/a", "n", "a")
	check(t, "symbol", symbol, "n/a", "n/a")
	check(t, "keyword", keyword, ":a", "a")
	check(t, "keyword", keyword, ":n/a", "n", "a")
	check(t, "keyword", keyword, ":a", kw.New("a"))

	fails(t, "symbol", symbol, failure.Type, int64(1))

	a, _ := call(t, "gensym", gensym)
	b, _ := call(t, "gensym", gensym, "x__")

	if a == b || !strings.HasPrefix(b.(*sym.T).Base(), "x__") {
		t.Fatalf("unexpected gensyms %v and %v", a, b)
	}
}

func TestPrinting(t *testing.T) {
	out := &bytes.Buffer{}
	e := &Env{Out: out}

	check(t, "print", e.print, "nil", "a", int64(1))
	check(t, "println", e.println, "nil", nil, kw.New("k"))
	check(t, "prn", e.prn, "nil", "a", nil)

	if s := out.String(); s != "a 1 :k\n\"a\" nil\n" {
		t.Fatalf("unexpected output %q", s)
	}

	check(t, "str", str, `""`)
	check(t, "str", str, `"a1:k[1 \"b\"]"`, "a", int64(1), kw.New("k"), vec.New(int64(1), "b"))
	check(t, "pr-str", prStr, `"\"a\" nil"`, "a", nil)
}

func TestMacros(t *testing.T) {
	for src, expected := range map[string]string{
		`(let [a 1] a)`:         `(let* [a 1] a)`,
		`(fn [a] a)`:            `(fn* [a] a)`,
		`(defn f [x] x)`:        `(def f (fn* f [x] x))`,
		`(defn f "doc" ([] 1))`: `(def f (fn* f ([] 1)))`,
		`(defn f "doc")`:        `(def f (fn* f "doc"))`,
		`(ns a.b "doc")`:        `(sprig.core/in-ns (quote a.b))`,
		`(defn- p [] 1)`:        `(do (def p (fn* p [] 1)) (sprig.core/set-private! (var p)) (var p))`,
		`(defmacro m [x] x)`: `(do (def m (fn* m [&form &env] (sprig.core/apply (fn* [x] x) (sprig.core/next &form)))) ` +
			`(sprig.core/set-macro! (var m)) (var m))`,
	} {
		f := form(t, src)
		head := f.(*list.T).First().(*sym.T).Base()

		fn := Macros()[head]

		v, err := call(t, head, fn, f, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src, err)
		}

		if s := literal.String(v); s != expected {
			t.Fatalf("%s: expected %s, got %s", src, expected, s)
		}
	}

	for src, expected := range map[string]*errorx.Type{
		`(let)`:               failure.Syntax,
		`(defn)`:              failure.Syntax,
		`(defn f)`:            failure.Syntax,
		`(defn a/f [] 1)`:     failure.Syntax,
		`(ns)`:                failure.Syntax,
		`(ns a (:require b))`: failure.Syntax,
	} {
		f := form(t, src)
		head := f.(*list.T).First().(*sym.T).Base()

		if _, err := call(t, head, Macros()[head], f, nil); !failure.Is(err, expected) {
			t.Fatalf("%s: expected %s, got %v", src, expected.FullName(), err)
		}
	}
}
