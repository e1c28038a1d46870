// Released under an MIT license. See LICENSE.

package analyzer

import (
	"strings"

	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/engine/node"
	"github.com/sprig-lang/sprig/internal/host"
)

func (a *analyzer) special(s *scope, t *tail, name string, l *list.T) (node.Expr, bool) {
	args := l.Rest().Items()

	switch name {
	case "do":
		return a.body(s, t, args)
	case "if":
		return a.analyzeIf(s, t, args)
	case "let*":
		return a.analyzeLet(s, t, name, args)
	case "loop", "loop*":
		return a.analyzeLoop(s, name, args), false
	case "recur":
		return a.analyzeRecur(s, t, args), true
	case "fn*":
		return a.analyzeFn(s, args), false
	case "def":
		return a.analyzeDef(s, args), false
	case "var":
		return a.analyzeVar(args), false
	case "set!":
		return a.analyzeSet(s, args), false
	case "quote":
		count(name, args, 1, 1)

		return &node.Const{Value: args[0]}, false
	case "throw":
		count(name, args, 1, 1)

		e, _ := a.analyze(s, nil, args[0])

		return &node.Throw{Value: e}, false
	case "try":
		return a.analyzeTry(s, args), false
	case "locking":
		count(name, args, 1, -1)

		lock, _ := a.analyze(s, nil, args[0])
		body, _ := a.body(s, nil, args[1:])

		return &node.Locking{Body: body, Lock: lock}, false
	case "new":
		return a.analyzeNew(s, args), false
	case ".":
		return a.analyzeDot(s, args), false
	}

	panic(failure.Syntax.New("%s is only valid inside try", name))
}

// body analyzes forms in sequence. Only the last is in tail position.
func (a *analyzer) body(s *scope, t *tail, forms []any) (node.Expr, bool) {
	switch len(forms) {
	case 0:
		return &node.Const{}, false
	case 1:
		return a.analyze(s, t, forms[0])
	}

	last := len(forms) - 1
	exprs := a.operands(s, forms[:last])

	e, recurred := a.analyze(s, t, forms[last])

	return &node.Do{Exprs: append(exprs, e)}, recurred
}

// bindings analyzes a binding vector. Each init is analyzed before its
// own name is bound.
func (a *analyzer) bindings(s *scope, name string, form any) (*scope, []node.Expr, []int) {
	v, ok := form.(*vec.T)
	if !ok {
		panic(failure.Syntax.New("bad binding form in %s, expected vector", name))
	}

	items := v.Items()
	if len(items)%2 != 0 {
		panic(failure.Syntax.New("%s requires an even number of forms in binding vector", name))
	}

	defs := make([]node.Expr, 0, len(items)/2)
	slots := make([]int, 0, len(items)/2)

	for i := 0; i < len(items); i += 2 {
		binder := local(items[i])

		init, _ := a.analyze(s, nil, items[i+1])

		s = s.push(binder)

		defs = append(defs, &node.LocalDef{Init: init, Slot: s.slot})
		slots = append(slots, s.slot)
	}

	return s, defs, slots
}

func (a *analyzer) analyzeDef(s *scope, args []any) node.Expr {
	count("def", args, 2, 2)

	y, ok := args[0].(*sym.T)
	if !ok {
		panic(failure.Syntax.New("first argument to def must be a symbol"))
	}

	current := a.store.Current()

	if y.Qualified() {
		target := a.store.Find(y.Namespace())
		if target == nil {
			panic(failure.Resolution.New("no such namespace: %s", y.Namespace()))
		}

		if target != current {
			panic(failure.Syntax.New("can't create defs outside of current ns: %s", y))
		}
	}

	if v, _ := a.store.Resolve(current, sym.New("", y.Base())); v != nil && v.Namespace() != current {
		panic(failure.DefinitionConflict.New(
			"%s already refers to: %s in namespace: %s", y.Base(), v.Literal(), current.Text(),
		))
	}

	v := current.LookupOrIntern(y.Base(), true)

	init, _ := a.analyze(s, nil, args[1])

	return &node.GlobalDef{Init: init, Var: v}
}

func (a *analyzer) analyzeDot(s *scope, args []any) node.Expr {
	count(".", args, 2, -1)

	target, _ := a.analyze(s, nil, args[0])

	member := args[1]
	rest := args[2:]

	if l, ok := member.(*list.T); ok && len(rest) == 0 && l.Count() > 0 {
		member = l.First()
		rest = l.Rest().Items()
	}

	y, ok := member.(*sym.T)
	if !ok || y.Qualified() {
		panic(failure.Syntax.New("malformed member expression: %s", literal.String(member)))
	}

	return &node.Member{
		Args:   a.operands(s, rest),
		Host:   a.host,
		Name:   strings.TrimPrefix(y.Base(), "-"),
		Target: target,
	}
}

func (a *analyzer) analyzeIf(s *scope, t *tail, args []any) (node.Expr, bool) {
	count("if", args, 2, 3)

	test, _ := a.analyze(s, nil, args[0])
	then, r1 := a.analyze(s, t, args[1])

	var otherwise node.Expr = &node.Const{}

	r2 := false
	if len(args) == 3 {
		otherwise, r2 = a.analyze(s, t, args[2])
	}

	return &node.If{Test: test, Then: then, Else: otherwise}, r1 || r2
}

func (a *analyzer) analyzeLet(s *scope, t *tail, name string, args []any) (node.Expr, bool) {
	count(name, args, 1, -1)

	s, defs, _ := a.bindings(s, name, args[0])

	body, recurred := a.body(s, t, args[1:])

	return &node.Do{Exprs: append(defs, body)}, recurred
}

// analyzeLoop is a let whose body is a recur target. A loop never passes
// a recur out to an enclosing target.
func (a *analyzer) analyzeLoop(s *scope, name string, args []any) node.Expr {
	count(name, args, 1, -1)

	s, defs, slots := a.bindings(s, name, args[0])

	body, recurred := a.body(s, &tail{slots: slots}, args[1:])
	if recurred {
		body = &node.Loop{Body: body}
	}

	return &node.Do{Exprs: append(defs, body)}
}

func (a *analyzer) analyzeNew(s *scope, args []any) node.Expr {
	count("new", args, 1, -1)

	return &node.New{
		Args:  a.operands(s, args[1:]),
		Class: a.class(s, args[0]),
		Host:  a.host,
	}
}

func (a *analyzer) analyzeRecur(s *scope, t *tail, args []any) node.Expr {
	if t == nil {
		panic(failure.Syntax.New("can only recur from tail position"))
	}

	if len(args) != len(t.slots) {
		panic(failure.RecurArity.New(
			"mismatched argument count to recur, expected: %d args, got: %d",
			len(t.slots), len(args),
		))
	}

	return &node.Recur{Args: a.operands(s, args), Slots: t.slots}
}

func (a *analyzer) analyzeSet(s *scope, args []any) node.Expr {
	count("set!", args, 2, 2)

	y, ok := args[0].(*sym.T)
	if !ok {
		panic(failure.Syntax.New("invalid assignment target: %s", literal.String(args[0])))
	}

	if !y.Qualified() && s.shadows(y.Base()) {
		panic(failure.Syntax.New("cannot assign to a local: %s", y))
	}

	v, err := a.store.Resolve(a.store.Current(), y)
	if err != nil {
		panic(err)
	}

	if v == nil {
		panic(failure.Resolution.New("unable to resolve var: %s in this context", y))
	}

	value, _ := a.analyze(s, nil, args[1])

	return &node.GlobalSet{Value: value, Var: v}
}

func (a *analyzer) analyzeVar(args []any) node.Expr {
	count("var", args, 1, 1)

	y, ok := args[0].(*sym.T)
	if !ok {
		panic(failure.Syntax.New("var argument must be a symbol"))
	}

	v, err := a.store.Resolve(a.store.Current(), y)
	if err != nil {
		panic(err)
	}

	if v == nil {
		panic(failure.Resolution.New("unable to resolve var: %s in this context", y))
	}

	return &node.Const{Value: v}
}

func count(name string, args []any, min, max int) {
	if len(args) < min {
		panic(failure.Syntax.New("too few arguments to %s", name))
	}

	if max >= 0 && len(args) > max {
		panic(failure.Syntax.New("too many arguments to %s", name))
	}
}

func local(form any) string {
	y, ok := form.(*sym.T)
	if !ok {
		panic(failure.Syntax.New("bad binding form, expected symbol, got: %s", literal.String(form)))
	}

	if y.Qualified() {
		panic(failure.Syntax.New("can't let qualified name: %s", y))
	}

	return y.Base()
}

func (a *analyzer) class(s *scope, form any) *host.Class {
	y, ok := form.(*sym.T)
	if !ok || (!y.Qualified() && s.shadows(y.Base())) {
		panic(failure.Resolution.New("unable to resolve classname: %s", literal.String(form)))
	}

	c := a.host.ResolveClass(y.String())
	if c == nil {
		panic(failure.Resolution.New("unable to resolve classname: %s", y))
	}

	return c
}
