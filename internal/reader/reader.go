// Released under an MIT license. See LICENSE.

// Package reader encapsulates the sprig lexer and parser.
package reader

import (
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/struct/token"
	"github.com/sprig-lang/sprig/internal/reader/lexer"
	"github.com/sprig-lang/sprig/internal/reader/parser"
)

// T (reader) accumulates source text and produces complete forms.
type T struct {
	held []*token.T
	s    *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{s: lexer.New(name)}
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Pending returns true if the reader holds the start of an unfinished form.
func (r *reader) Pending() bool {
	return len(r.held) > 0 || r.s.Pending()
}

// Reset discards any unfinished form.
func (r *reader) Reset() {
	r.held = nil
	r.s = lexer.New(r.s.Label())
}

// Scan reads line and returns every form it completes. Tokens belonging to
// a form that is still open are held until a later call completes it.
func (r *reader) Scan(line string) ([]any, error) {
	r.s.Scan(line)

	for t := r.s.Token(); t != nil; t = r.s.Token() {
		r.held = append(r.held, t)
	}

	forms, used, err := parser.Parse(r.held)
	if failure.Is(err, failure.Incomplete) {
		r.held = r.held[used:]

		return forms, nil
	}

	r.held = nil

	return forms, err
}

// ReadAll returns every form in text. Text that ends inside a form is an
// error.
func ReadAll(name, text string) ([]any, error) {
	r := New(name)

	forms, err := r.Scan(text + "\n")
	if err != nil {
		return forms, err
	}

	if r.Pending() {
		return forms, failure.Incomplete.New("%s: unexpected end of input", name)
	}

	return forms, nil
}
