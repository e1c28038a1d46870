// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/joomcode/errorx"
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/kw"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/namespace"
)

const nativename = "native"

// Native is a function implemented in Go.
type Native struct {
	fn    func([]any) (any, error)
	label string
}

// NewNative creates a native function called label.
func NewNative(label string, fn func([]any) (any, error)) *Native {
	return &Native{fn: fn, label: label}
}

// Equal returns true if v is the same native function as n.
func (n *Native) Equal(v any) bool {
	o, ok := v.(*Native)

	return ok && o == n
}

// Invoke calls n with args. A panic in n becomes a type error.
func (n *Native) Invoke(args []any) (v any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok {
			if errorx.Cast(e) != nil {
				err = e
			} else {
				err = failure.Type.Wrap(e, "%s", n.label)
			}

			return
		}

		err = failure.Type.New("%s: %v", n.label, r)
	}()

	return n.fn(args)
}

// Label returns the name of the native function n.
func (n *Native) Label() string {
	return n.label
}

// Literal returns the literal representation of the native function n.
func (n *Native) Literal() string {
	return "#function[" + n.label + "]"
}

// Name returns the type name for the native function n.
func (n *Native) Name() string {
	return nativename
}

func (n *Native) String() string {
	return n.Literal()
}

// Apply calls callee with args. Functions, vars holding callables,
// keywords, maps, and vectors can all be called.
func Apply(callee any, args []any) (any, error) {
	switch c := callee.(type) {
	case *Fn:
		return c.Invoke(args)
	case *Native:
		return c.Invoke(args)
	case *namespace.Var:
		v, err := c.Deref()
		if err != nil {
			return nil, err
		}

		return Apply(v, args)
	case *kw.T:
		if len(args) < 1 || len(args) > 2 {
			return nil, mismatch(c.Literal(), len(args))
		}

		return lookup(args[0], c, args[1:])
	case *hmap.T:
		if len(args) < 1 || len(args) > 2 {
			return nil, mismatch("map", len(args))
		}

		return lookup(c, args[0], args[1:])
	case *vec.T:
		if len(args) != 1 {
			return nil, mismatch("vector", len(args))
		}

		i, ok := args[0].(int64)
		if !ok {
			return nil, failure.Type.New("vector index must be an integer")
		}

		v, ok := c.Nth(int(i))
		if !ok {
			return nil, failure.Type.New("index out of bounds: %d", i)
		}

		return v, nil
	}

	return nil, failure.Type.New("%s cannot be called as a function", common.TypeName(callee))
}

func lookup(m, k any, dflt []any) (any, error) {
	if hm, ok := m.(*hmap.T); ok {
		if v, ok := hm.Get(k); ok {
			return v, nil
		}
	}

	if len(dflt) > 0 {
		return dflt[0], nil
	}

	return nil, nil
}

func mismatch(label string, n int) error {
	return failure.ArityMismatch.New("wrong number of args (%d) passed to: %s", n, label)
}
