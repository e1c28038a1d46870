// Released under an MIT license. See LICENSE.

// Package parser turns a sequence of tokens into sprig forms.
package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/sprig-lang/sprig/internal/adapted"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/struct/token"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/kw"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
)

//nolint:gochecknoglobals
var (
	quote  = sym.New("", "quote")
	varsym = sym.New("", "var")
)

// T (parser) holds the tokens being parsed and the position of the next one.
type T struct {
	index  int
	tokens []*token.T
}

type parser = T

type incomplete struct{}

// Parse converts ts into forms. It returns the forms read and the number of
// tokens they used. If ts ends inside a form, the error is a
// failure.Incomplete error and the tokens after used belong to that form.
func Parse(ts []*token.T) (forms []any, used int, err error) {
	p := &parser{tokens: ts}

	for p.index < len(ts) {
		start := p.index

		f, err := p.next()
		if err != nil {
			return forms, start, err
		}

		forms = append(forms, f)
	}

	return forms, p.index, nil
}

func (p *parser) next() (form any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case incomplete:
			err = failure.Incomplete.New("unexpected end of input")
		case error:
			err = r
		default:
			panic(r)
		}
	}()

	return p.form(), nil
}

func (p *parser) consume() *token.T {
	if p.index >= len(p.tokens) {
		panic(incomplete{})
	}

	t := p.tokens[p.index]
	p.index++

	return t
}

func (p *parser) form() any {
	t := p.consume()

	switch t.Class() {
	case '(':
		return list.New(p.until(')')...)
	case '[':
		return vec.New(p.until(']')...)
	case '{':
		items := p.until('}')
		if len(items)%2 != 0 {
			panic(fail(t, "map literal must contain an even number of forms"))
		}

		return hmap.New(items...)
	case '\'':
		return list.New(quote, p.form())
	case token.VarQuote:
		return list.New(varsym, p.form())
	case token.String:
		v := t.Value()

		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			panic(fail(t, err.Error()))
		}

		return s
	case token.Atom:
		return atom(t)
	case token.Error:
		panic(fail(t, t.Value()))
	}

	panic(fail(t, "unexpected "+strconv.Quote(t.Value())))
}

func (p *parser) until(c token.Class) []any {
	items := []any{}

	for {
		if p.index >= len(p.tokens) {
			panic(incomplete{})
		}

		if p.tokens[p.index].Is(c) {
			p.index++

			return items
		}

		items = append(items, p.form())
	}
}

func atom(t *token.T) any {
	v := t.Value()

	switch v {
	case "nil":
		return nil
	case "true":
		return true
	case "false":
		return false
	}

	if numeric(v) {
		return number(t)
	}

	if strings.HasPrefix(v, ":") {
		if len(v) == 1 {
			panic(fail(t, "invalid token: :"))
		}

		return kw.New(v[1:])
	}

	return sym.Parse(v)
}

func fail(t *token.T, msg string) error {
	return failure.Reader.New("%s: %s", t.Source(), msg)
}

func number(t *token.T) any {
	v := t.Value()

	if digits := strings.TrimSuffix(v, "N"); digits != v {
		if b, ok := new(big.Int).SetString(strings.TrimPrefix(digits, "+"), 10); ok {
			return b
		}

		panic(fail(t, "invalid number: "+v))
	}

	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		return i
	}

	if b, ok := new(big.Int).SetString(strings.TrimPrefix(v, "+"), 10); ok {
		return b
	}

	f, err := strconv.ParseFloat(v, 64)
	if err == nil {
		return f
	}

	panic(fail(t, "invalid number: "+v))
}

func numeric(v string) bool {
	if v[0] == '+' || v[0] == '-' {
		v = v[1:]
	}

	return v != "" && v[0] >= '0' && v[0] <= '9'
}
