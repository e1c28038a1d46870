// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
)

// Map builds a map from alternating key and value expressions.
type Map struct {
	Entries []Expr
}

// Eval evaluates keys and values left to right.
func (m *Map) Eval(f *frame.T) (any, error) {
	kvs, err := evalAll(f, m.Entries)
	if err != nil {
		return nil, err
	}

	return hmap.New(kvs...), nil
}

// Vector builds a vector.
type Vector struct {
	Items []Expr
}

// Eval evaluates items left to right.
func (v *Vector) Eval(f *frame.T) (any, error) {
	items, err := evalAll(f, v.Items)
	if err != nil {
		return nil, err
	}

	return vec.New(items...), nil
}
