package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/reader"
)

type echo struct {
	forms []string
}

func (e *echo) Eval(form any) (any, error) {
	s := literal.String(form)
	if s == "fail" {
		return nil, errors.New("failed")
	}

	e.forms = append(e.forms, s)

	return form, nil
}

func (*echo) Names() []string {
	return []string{"println", "prn", "print", "str"}
}

func (*echo) Namespace() string {
	return "user"
}

func TestFeedContinues(t *testing.T) {
	e := &echo{}
	r := reader.New("test")

	var out, errs bytes.Buffer

	feed(e, r, "(+ 1", &out, &errs)

	if !r.Pending() || out.Len() != 0 {
		t.Fatalf("expected a pending form, got %q", out.String())
	}

	feed(e, r, "2) :k fail", &out, &errs)

	if r.Pending() {
		t.Fatal("expected no pending form")
	}

	if s := out.String(); s != "(+ 1 2)\n:k\n" {
		t.Fatalf("unexpected output %q", s)
	}

	if s := errs.String(); s != "failed\n" {
		t.Fatalf("unexpected errors %q", s)
	}
}

func TestFeedReportsReaderErrors(t *testing.T) {
	var out, errs bytes.Buffer

	feed(&echo{}, reader.New("test"), "1 )", &out, &errs)

	if out.String() != "1\n" || errs.Len() == 0 {
		t.Fatalf("expected a value then an error, got %q and %q", out.String(), errs.String())
	}
}

func TestScript(t *testing.T) {
	e := &echo{}

	if err := Script(e, "test", strings.NewReader("1 (a b)\n[c]")); err != nil {
		t.Fatal(err)
	}

	if len(e.forms) != 3 || e.forms[2] != "[c]" {
		t.Fatalf("unexpected forms %v", e.forms)
	}

	if err := Script(e, "test", strings.NewReader("fail 2")); err == nil {
		t.Fatal("expected an error")
	}

	if err := Script(e, "test", strings.NewReader("(1")); err == nil {
		t.Fatal("expected an error for unfinished input")
	}
}

func TestCompleter(t *testing.T) {
	head, cs, tail := completer(&echo{})("(pr x)", 3)

	if head != "(" || tail != " x)" {
		t.Fatalf("unexpected split %q %q", head, tail)
	}

	if strings.Join(cs, " ") != "print println prn" {
		t.Fatalf("unexpected completions %v", cs)
	}

	if _, cs, _ = completer(&echo{})("( ", 2); cs != nil {
		t.Fatalf("expected no completions, got %v", cs)
	}
}

func TestPrompt(t *testing.T) {
	if p := prompt("user", false); p != "user=> " {
		t.Fatalf("unexpected prompt %q", p)
	}

	if p := prompt("user", true); p != "  #_=> " {
		t.Fatalf("unexpected continuation prompt %q", p)
	}
}
