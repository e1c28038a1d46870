// Released under an MIT license. See LICENSE.

// Package node provides the expression tree produced by the analyzer and
// the evaluator that runs it.
//
// Every node evaluates against the frame of the activation it belongs to.
// Errors are returned, never panicked. A recur returns the repeat sentinel,
// which only a Loop consumes.
package node

import (
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
)

// Expr is an analyzed expression.
type Expr interface {
	Eval(f *frame.T) (any, error)
}

// Const is a constant value.
type Const struct {
	Value any
}

// Eval returns the constant.
func (c *Const) Eval(*frame.T) (any, error) {
	return c.Value, nil
}

// Do evaluates its expressions in order and returns the value of the last.
type Do struct {
	Exprs []Expr
}

// Eval evaluates d in f.
func (d *Do) Eval(f *frame.T) (v any, err error) {
	for _, e := range d.Exprs {
		v, err = e.Eval(f)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// If evaluates Then when Test is truthy and Else otherwise.
type If struct {
	Test Expr
	Then Expr
	Else Expr
}

// Eval evaluates i in f.
func (i *If) Eval(f *frame.T) (any, error) {
	v, err := i.Test.Eval(f)
	if err != nil {
		return nil, err
	}

	if common.Truthy(v) {
		return i.Then.Eval(f)
	}

	return i.Else.Eval(f)
}

// CaptureUse reads a captured value.
type CaptureUse struct {
	Index int
	Label string
}

// Eval returns the captured value.
func (c *CaptureUse) Eval(f *frame.T) (any, error) {
	return f.Capture(c.Index), nil
}

// LocalDef stores the value of Init in a slot. It evaluates to nil.
type LocalDef struct {
	Init Expr
	Slot int
}

// Eval evaluates l in f.
func (l *LocalDef) Eval(f *frame.T) (any, error) {
	v, err := l.Init.Eval(f)
	if err != nil {
		return nil, err
	}

	f.Set(l.Slot, v)

	return nil, nil
}

// LocalUse reads a slot.
type LocalUse struct {
	Label string
	Slot  int
}

// Eval returns the value in the slot.
func (l *LocalUse) Eval(f *frame.T) (any, error) {
	return f.Get(l.Slot), nil
}
