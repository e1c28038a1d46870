// Released under an MIT license. See LICENSE.

package analyzer

import (
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/engine/node"
)

// analyzeTry analyzes (try body... (catch Class name body...)... (finally body...)).
// Nothing inside a try is in tail position.
func (a *analyzer) analyzeTry(s *scope, args []any) node.Expr {
	i := 0
	for i < len(args) && clause(args[i]) == "" {
		i++
	}

	body, _ := a.body(s, nil, args[:i])

	t := &node.Try{Body: body}

	for _, form := range args[i:] {
		if t.Finally != nil {
			panic(failure.Syntax.New("finally clause must be last in try expression"))
		}

		kind := clause(form)
		if kind == "" {
			panic(failure.Syntax.New("only catch or finally clause can follow catch in try expression"))
		}

		rest := form.(*list.T).Rest().Items() //nolint:forcetypeassert

		if kind == "catch" {
			t.Catches = append(t.Catches, a.analyzeCatch(s, rest))
		} else {
			t.Finally, _ = a.body(s, nil, rest)
		}
	}

	return t
}

func (a *analyzer) analyzeCatch(s *scope, args []any) *node.Catch {
	count("catch", args, 2, -1)

	class := a.class(s, args[0])

	s = s.push(local(args[1]))

	body, _ := a.body(s, nil, args[2:])

	return &node.Catch{Body: body, Class: class, Slot: s.slot}
}

// clause returns "catch" or "finally" if form is that kind of clause.
func clause(form any) string {
	l, ok := form.(*list.T)
	if !ok || l.Count() == 0 {
		return ""
	}

	y, ok := l.First().(*sym.T)
	if !ok || y.Qualified() {
		return ""
	}

	switch y.Base() {
	case "catch", "finally":
		return y.Base()
	}

	return ""
}
