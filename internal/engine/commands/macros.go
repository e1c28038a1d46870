// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

//nolint:gochecknoglobals
var (
	applySym      = sym.New("sprig.core", "apply")
	def           = sym.New("", "def")
	do            = sym.New("", "do")
	fnStar        = sym.New("", "fn*")
	formSym       = sym.New("", "&form")
	envSym        = sym.New("", "&env")
	inNsSym       = sym.New("sprig.core", "in-ns")
	letStar       = sym.New("", "let*")
	nextSym       = sym.New("sprig.core", "next")
	quote         = sym.New("", "quote")
	setMacroSym   = sym.New("sprig.core", "set-macro!")
	setPrivateSym = sym.New("sprig.core", "set-private!")
	varSym        = sym.New("", "var")
)

func defmacro(args []any) (any, error) {
	name, clauses := definition("defmacro", args)

	// The macro function takes the whole form and the environment and
	// spreads the form's operands over the user's clauses.
	body := list.New(applySym, list.Cons(fnStar, list.New(clauses...)), list.New(nextSym, formSym))
	expander := list.New(fnStar, name, vec.New(formSym, envSym), body)

	return list.New(
		do,
		list.New(def, name, expander),
		list.New(setMacroSym, list.New(varSym, name)),
		list.New(varSym, name),
	), nil
}

func defn(args []any) (any, error) {
	name, clauses := definition("defn", args)

	return list.New(def, name, list.Cons(fnStar, list.Cons(name, list.New(clauses...)))), nil
}

func defnPrivate(args []any) (any, error) {
	name, clauses := definition("defn-", args)

	return list.New(
		do,
		list.New(def, name, list.Cons(fnStar, list.Cons(name, list.New(clauses...)))),
		list.New(setPrivateSym, list.New(varSym, name)),
		list.New(varSym, name),
	), nil
}

func fn(args []any) (any, error) {
	return list.Cons(fnStar, operands("fn", args, 1)), nil
}

func let(args []any) (any, error) {
	return list.Cons(letStar, operands("let", args, 1)), nil
}

func ns(args []any) (any, error) {
	ops := operands("ns", args, 1).Items()

	name, ok := ops[0].(*sym.T)
	if !ok || name.Qualified() {
		return nil, failure.Syntax.New("ns expects a simple symbol, got %s", literal.String(ops[0]))
	}

	rest := ops[1:]
	if len(rest) > 0 {
		if _, ok := rest[0].(string); ok {
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		return nil, failure.Syntax.New("unsupported ns clause: %s", literal.String(rest[0]))
	}

	return list.New(inNsSym, list.New(quote, name)), nil
}

// definition splits a defining form into its name and its clauses,
// dropping a docstring that follows the name.
func definition(label string, args []any) (*sym.T, []any) {
	ops := operands(label, args, 2).Items()

	name, ok := ops[0].(*sym.T)
	if !ok || name.Qualified() {
		panic(failure.Syntax.New("%s expects a simple symbol as its name, got %s", label, literal.String(ops[0])))
	}

	clauses := ops[1:]
	if _, ok := clauses[0].(string); ok && len(clauses) > 1 {
		clauses = clauses[1:]
	}

	return name, clauses
}

// operands returns the operands of the macro call form, which must number
// at least min.
func operands(label string, args []any, min int) *list.T {
	v := validate.Fixed(label, args, 1, 2)

	form, ok := v[0].(*list.T)
	if !ok {
		panic(failure.Type.New("%s expects a form", label))
	}

	ops := form.Rest()
	if ops.Count() < min {
		panic(failure.Syntax.New("too few operands to %s: %s", label, literal.String(form)))
	}

	return ops
}
