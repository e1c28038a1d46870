// Released under an MIT license. See LICENSE.

package analyzer

import (
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/engine/node"
)

// analyzeFn analyzes (fn* name? [params] body...) and
// (fn* name? ([params] body...)...). All clauses share one closure.
func (a *analyzer) analyzeFn(s *scope, args []any) node.Expr {
	label := ""

	if len(args) > 0 {
		if y, ok := args[0].(*sym.T); ok {
			if y.Qualified() {
				panic(failure.Syntax.New("can't use qualified name as fn name: %s", y))
			}

			label = y.Base()
			args = args[1:]
		}
	}

	if len(args) == 0 {
		panic(failure.Syntax.New("parameter declaration missing"))
	}

	clauses := [][]any{args}

	if _, ok := args[0].(*vec.T); !ok {
		clauses = make([][]any, len(args))

		for i, form := range args {
			l, ok := form.(*list.T)
			if !ok || l.Count() == 0 {
				panic(failure.Syntax.New("invalid fn method: %s", literal.String(form)))
			}

			clauses[i] = l.Items()
		}
	}

	c := s.pushClosure()

	methods := make([]*node.Method, node.MaxPositionalArity+1)

	var variadic *node.Method

	for _, clause := range clauses {
		m := a.method(c, label, clause)

		if m.Variadic {
			if variadic != nil {
				panic(failure.DefinitionConflict.New("can't have more than 1 variadic overload"))
			}

			variadic = m

			continue
		}

		if methods[m.Arity] != nil {
			panic(failure.DefinitionConflict.New(
				"can't have more than 1 overload with arity %d", m.Arity,
			))
		}

		methods[m.Arity] = m
	}

	if variadic != nil {
		for arity := variadic.Arity + 1; arity < len(methods); arity++ {
			if methods[arity] != nil {
				panic(failure.DefinitionConflict.New(
					"can't have fixed arity function with more params than variadic function",
				))
			}
		}
	}

	return &node.Closure{
		Captures: c.recipes,
		Label:    label,
		Methods:  methods,
		Variadic: variadic,
	}
}

// method analyzes one clause, ([params] body...), under the closure c.
func (a *analyzer) method(c *scope, label string, clause []any) *node.Method {
	params, ok := clause[0].(*vec.T)
	if !ok {
		panic(failure.Syntax.New("fn method must start with a params vector"))
	}

	items := params.Items()
	names := make([]string, 0, len(items))
	variadic := false

	i := 0
	for ; i < len(items); i++ {
		p := param(items[i])
		if p == "&" {
			variadic = true
			i++

			break
		}

		names = append(names, p)
	}

	arity := len(names)
	if arity > node.MaxPositionalArity {
		panic(failure.Syntax.New("can't specify more than %d params", node.MaxPositionalArity))
	}

	if variadic {
		if i >= len(items) {
			panic(failure.Syntax.New("invalid parameter list: missing rest param name"))
		}

		p := param(items[i])
		if p == "&" {
			panic(failure.Syntax.New("invalid parameter list: extra &"))
		}

		if i+1 != len(items) {
			panic(failure.Syntax.New("invalid parameter list: extra param after rest param"))
		}

		names = append(names, p)
	}

	r, slots := c.pushFunction(false, label, names)

	body, recurred := a.body(r, &tail{slots: slots}, clause[1:])
	if recurred {
		body = &node.Loop{Body: body}
	}

	return &node.Method{
		Arity:    arity,
		Body:     body,
		Slots:    r.slots,
		Variadic: variadic,
	}
}

func param(form any) string {
	y, ok := form.(*sym.T)
	if !ok {
		panic(failure.Syntax.New("non-symbol fn param: %s", literal.String(form)))
	}

	if y.Qualified() {
		panic(failure.Syntax.New("can't use qualified name as parameter: %s", y))
	}

	return y.Base()
}
