// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/namespace"
)

// GlobalDef binds a var to the value of Init and evaluates to the var.
type GlobalDef struct {
	Init Expr
	Var  *namespace.Var
}

// Eval evaluates g in f.
func (g *GlobalDef) Eval(f *frame.T) (any, error) {
	v, err := g.Init.Eval(f)
	if err != nil {
		return nil, err
	}

	g.Var.Set(v)

	return g.Var, nil
}

// GlobalSet rebinds a var and evaluates to the new value.
type GlobalSet struct {
	Value Expr
	Var   *namespace.Var
}

// Eval evaluates g in f.
func (g *GlobalSet) Eval(f *frame.T) (any, error) {
	v, err := g.Value.Eval(f)
	if err != nil {
		return nil, err
	}

	g.Var.Set(v)

	return v, nil
}

// GlobalUse reads the current value of a var.
type GlobalUse struct {
	Var *namespace.Var
}

// Eval returns the var's value.
func (g *GlobalUse) Eval(*frame.T) (any, error) {
	return g.Var.Deref()
}
