// Released under an MIT license. See LICENSE.

// Package analyzer turns forms into node expressions.
//
// Analysis is a single recursive descent. Locals are assigned slots,
// references that cross a function literal become captures, special forms
// are checked for shape, and macros are expanded. A malformed form panics
// with a failure error that Analyze recovers, so one bad top-level form
// never produces a partial tree.
package analyzer

import (
	"strings"

	"github.com/joomcode/errorx"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/engine/node"
	"github.com/sprig-lang/sprig/internal/host"
	"github.com/sprig-lang/sprig/internal/namespace"
)

// MaxExpansionDepth is the number of macro expansions that may be in
// progress at once while analyzing one top-level form.
const MaxExpansionDepth = 1000

// T (analyzer) resolves globals through a namespace store and classes
// through a host registry.
type T struct {
	host  *host.Registry
	store *namespace.Store
}

type analyzer = T

// tail marks a result position. It holds the slots a recur rebinds.
// A nil *tail is a non-tail position.
type tail struct {
	slots []int
}

//nolint:gochecknoglobals
var (
	dot    = sym.New("", ".")
	newsym = sym.New("", "new")

	specials = map[string]bool{
		".": true, "catch": true, "def": true, "do": true,
		"finally": true, "fn*": true, "if": true, "let*": true,
		"locking": true, "loop": true, "loop*": true, "new": true,
		"quote": true, "recur": true, "set!": true, "throw": true,
		"try": true, "var": true,
	}
)

// New creates an analyzer.
func New(store *namespace.Store, registry *host.Registry) *T {
	return &T{host: registry, store: store}
}

// IsSpecial returns true if name is a special form.
func IsSpecial(name string) bool {
	return specials[name]
}

// Analyze turns the top-level form into a static method that takes no
// arguments.
func (a *analyzer) Analyze(form any) (m *node.Method, err error) {
	defer recovered(&err)

	s, _ := newToplevel().pushFunction(true, "", nil)

	body, _ := a.analyze(s, nil, form)

	return &node.Method{Body: body, Slots: s.slots, Static: true}, nil
}

// Macroexpand1 expands form once if it is a macro call or uses member or
// constructor sugar. Anything else is returned unchanged.
func (a *analyzer) Macroexpand1(form any) (expanded any, err error) {
	defer recovered(&err)

	l, ok := form.(*list.T)
	if !ok || l.Count() == 0 {
		return form, nil
	}

	if y, ok := l.First().(*sym.T); ok && !y.Qualified() && specials[y.Base()] {
		return form, nil
	}

	if d, ok := a.desugar(l); ok {
		return d, nil
	}

	s, _ := newToplevel().pushFunction(true, "", nil)
	if v := a.macro(s, l.First()); v != nil {
		return a.expand(v, l), nil
	}

	return form, nil
}

func (a *analyzer) analyze(s *scope, t *tail, form any) (node.Expr, bool) {
	switch f := form.(type) {
	case *sym.T:
		return a.symbol(s, f), false
	case *list.T:
		if f.Count() == 0 {
			return &node.Const{Value: f}, false
		}

		return a.list(s, t, f)
	case *vec.T:
		return a.vector(s, f), false
	case *hmap.T:
		return a.hashmap(s, f), false
	}

	return &node.Const{Value: form}, false
}

func (a *analyzer) desugar(l *list.T) (*list.T, bool) {
	y, ok := l.First().(*sym.T)
	if !ok {
		return nil, false
	}

	name := y.Base()

	if !y.Qualified() && len(name) > 1 && name[0] == '.' && name != ".." {
		target := l.Next()
		if target == nil {
			panic(failure.Syntax.New(
				"malformed member expression, expecting (.member target ...): %s",
				literal.String(l),
			))
		}

		member := sym.New("", name[1:])

		return list.Cons(dot, list.Cons(target.First(), list.Cons(member, target.Rest()))), true
	}

	if y.Qualified() && a.store.Find(y.Namespace()) == nil {
		if c := a.host.ResolveClass(y.Namespace()); c != nil {
			class := sym.New("", y.Namespace())
			member := sym.New("", name)

			return list.Cons(dot, list.Cons(class, list.Cons(member, l.Rest()))), true
		}
	}

	if !y.Qualified() && len(name) > 1 && strings.HasSuffix(name, ".") {
		class := sym.New("", strings.TrimSuffix(name, "."))

		return list.Cons(newsym, list.Cons(class, l.Rest())), true
	}

	return nil, false
}

func (a *analyzer) expand(v *namespace.Var, form *list.T) any {
	expanded, err := node.Apply(v, []any{form, nil})
	if err != nil {
		panic(errorx.Decorate(err, "while expanding %s", v.Symbol()))
	}

	return expanded
}

func (a *analyzer) hashmap(s *scope, m *hmap.T) node.Expr {
	entries := make([]node.Expr, 0, m.Count()*2)
	constant := true

	m.Each(func(k, v any) {
		ke, _ := a.analyze(s, nil, k)
		ve, _ := a.analyze(s, nil, v)

		constant = constant && isConst(ke) && isConst(ve)
		entries = append(entries, ke, ve)
	})

	if !constant {
		return &node.Map{Entries: entries}
	}

	kvs := make([]any, len(entries))
	for i, e := range entries {
		kvs[i] = e.(*node.Const).Value //nolint:forcetypeassert
	}

	return &node.Const{Value: hmap.New(kvs...)}
}

func (a *analyzer) invoke(s *scope, l *list.T) node.Expr {
	fn, _ := a.analyze(s, nil, l.First())

	return &node.Invoke{Fn: fn, Args: a.operands(s, l.Rest().Items())}
}

func (a *analyzer) list(s *scope, t *tail, l *list.T) (node.Expr, bool) {
	if y, ok := l.First().(*sym.T); ok && !y.Qualified() && specials[y.Base()] {
		return a.special(s, t, y.Base(), l)
	}

	if d, ok := a.desugar(l); ok {
		return a.analyze(s, t, d)
	}

	if v := a.macro(s, l.First()); v != nil {
		top := s.outermost()
		if top.expansions == MaxExpansionDepth {
			panic(failure.Syntax.New("macro expansion nested too deeply: %s", v.Symbol()))
		}

		top.expansions++
		defer func() { top.expansions-- }()

		return a.analyze(s, t, a.expand(v, l))
	}

	return a.invoke(s, l), false
}

func (a *analyzer) macro(s *scope, head any) *namespace.Var {
	y, ok := head.(*sym.T)
	if !ok || (!y.Qualified() && s.shadows(y.Base())) {
		return nil
	}

	v, err := a.store.Resolve(a.store.Current(), y)
	if err != nil || v == nil || !v.IsMacro() {
		return nil
	}

	return v
}

func (a *analyzer) operands(s *scope, forms []any) []node.Expr {
	es := make([]node.Expr, len(forms))
	for i, f := range forms {
		es[i], _ = a.analyze(s, nil, f)
	}

	return es
}

func (a *analyzer) symbol(s *scope, y *sym.T) node.Expr {
	if !y.Qualified() {
		if e, ok := s.resolve(y.Base()); ok {
			return e
		}
	}

	v, err := a.store.Resolve(a.store.Current(), y)
	if err != nil {
		if y.Qualified() && failure.Is(err, failure.Resolution) {
			if c := a.host.ResolveClass(y.Namespace()); c != nil {
				if _, err := a.host.ReadStaticField(c, y.Base()); err != nil {
					panic(failure.Resolution.New("unable to find static field: %s in %s", y.Base(), c.Text()))
				}

				return &node.StaticField{Class: c, Field: y.Base(), Host: a.host}
			}
		}

		panic(err)
	}

	if v != nil {
		if v.IsMacro() {
			panic(failure.Syntax.New("can't take value of a macro: %s", v.Literal()))
		}

		return &node.GlobalUse{Var: v}
	}

	if c := a.host.ResolveClass(y.Base()); c != nil {
		return &node.Const{Value: c}
	}

	panic(failure.Resolution.New("unable to resolve symbol: %s in this context", y))
}

func (a *analyzer) vector(s *scope, v *vec.T) node.Expr {
	items := a.operands(s, v.Items())

	values := make([]any, len(items))

	for i, e := range items {
		c, ok := e.(*node.Const)
		if !ok {
			return &node.Vector{Items: items}
		}

		values[i] = c.Value
	}

	return &node.Const{Value: vec.New(values...)}
}

func isConst(e node.Expr) bool {
	_, ok := e.(*node.Const)

	return ok
}

func recovered(err *error) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(error)
	if !ok {
		panic(r)
	}

	*err = e
}
