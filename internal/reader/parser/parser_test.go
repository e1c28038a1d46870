package parser

import (
	"math/big"
	"testing"

	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/struct/token"
	"github.com/sprig-lang/sprig/internal/reader/lexer"
)

func check(t *testing.T, s, expected string) {
	t.Helper()

	forms, _, err := Parse(tokens(s))
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", s, err)
	}

	if len(forms) != 1 {
		t.Fatalf("%q: expected 1 form, got %d", s, len(forms))
	}

	actual := literal.String(forms[0])
	if actual != expected {
		t.Fatalf("%q: expected %s, got %s", s, expected, actual)
	}

	// Printed forms must read back as themselves.
	again, _, err := Parse(tokens(actual))
	if err != nil || len(again) != 1 || literal.String(again[0]) != actual {
		t.Fatalf("%q: reparse of %s failed", s, actual)
	}
}

func tokens(s string) []*token.T {
	l := lexer.New("test")
	l.Scan(s + "\n")

	ts := []*token.T{}
	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

func TestAtoms(t *testing.T) {
	check(t, "nil", "nil")
	check(t, "true", "true")
	check(t, "false", "false")
	check(t, "42", "42")
	check(t, "-7", "-7")
	check(t, "2.5", "2.5")
	check(t, ":key", ":key")
	check(t, "foo", "foo")
	check(t, "user/foo", "user/foo")
	check(t, "/", "/")
}

func TestBigInteger(t *testing.T) {
	forms, _, err := Parse(tokens("123456789012345678901234567890"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := forms[0].(*big.Int); !ok {
		t.Fatalf("expected *big.Int, got %T", forms[0])
	}

	check(t, "7N", "7N")
}

func TestCollections(t *testing.T) {
	check(t, "(a b c)", "(a b c)")
	check(t, "()", "()")
	check(t, "[1 [2] ()]", "[1 [2] ()]")
	check(t, "{:a 1, :b 2}", "{:a 1, :b 2}")
}

func TestComments(t *testing.T) {
	check(t, "; leading\n(a ; inner\n b)", "(a b)")
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{"(a b", "[1 2", "{:a", "'", "#'"} {
		forms, used, err := Parse(tokens(s))
		if !failure.Is(err, failure.Incomplete) {
			t.Fatalf("%q: expected incomplete, got %v", s, err)
		}

		if len(forms) != 0 || used != 0 {
			t.Fatalf("%q: expected nothing used, got %d forms %d tokens", s, len(forms), used)
		}
	}
}

func TestIncompleteAfterComplete(t *testing.T) {
	forms, used, err := Parse(tokens("(a) (b"))
	if !failure.Is(err, failure.Incomplete) {
		t.Fatalf("expected incomplete, got %v", err)
	}

	if len(forms) != 1 || used != 3 {
		t.Fatalf("expected 1 form and 3 tokens used, got %d and %d", len(forms), used)
	}
}

func TestMalformed(t *testing.T) {
	for _, s := range []string{")", "{:a 1 :b}", "1x", `"\q"`, "#{1}"} {
		_, _, err := Parse(tokens(s))
		if !failure.Is(err, failure.Reader) {
			t.Fatalf("%q: expected reader error, got %v", s, err)
		}
	}
}

func TestQuotes(t *testing.T) {
	check(t, "'x", "(quote x)")
	check(t, "'(1 2)", "(quote (1 2))")
	check(t, "#'inc", "(var inc)")
}

func TestStrings(t *testing.T) {
	check(t, `"a\tb"`, `"a\tb"`)
	check(t, `"say \"hi\""`, `"say \"hi\""`)
}
