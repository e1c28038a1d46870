// Released under an MIT license. See LICENSE.

// Package vec provides sprig's immutable vector type.
package vec

import (
	"strings"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

const name = "vector"

// T (vec) is an indexed, immutable sequence.
type T struct {
	items []any
}

type vec = T

// New creates a vector holding a copy of items.
func New(items ...any) *vec {
	v := &vec{items: make([]any, len(items))}
	copy(v.items, items)

	return v
}

// Assoc returns a copy of v with index i set to value. An index equal to
// the count appends.
func (v *vec) Assoc(i int, value any) (*vec, bool) {
	if i < 0 || i > len(v.items) {
		return nil, false
	}

	if i == len(v.items) {
		return v.Conj(value), true
	}

	n := New(v.items...)
	n.items[i] = value

	return n, true
}

// Conj returns a copy of v with value appended.
func (v *vec) Conj(value any) *vec {
	n := &vec{items: make([]any, len(v.items), len(v.items)+1)}
	copy(n.items, v.items)
	n.items = append(n.items, value)

	return n
}

// Count returns the number of elements in v.
func (v *vec) Count() int {
	return len(v.items)
}

// Equal returns true if o is a sequential collection with equal elements.
func (v *vec) Equal(o any) bool {
	return common.Equal(v, o)
}

// Items returns the elements of v. The slice must not be modified.
func (v *vec) Items() []any {
	return v.items
}

// Literal returns the literal representation of the vector v.
func (v *vec) Literal() string {
	s := make([]string, len(v.items))

	for i, e := range v.items {
		s[i] = literal.String(e)
	}

	return "[" + strings.Join(s, " ") + "]"
}

// Name returns the type name for vectors.
func (v *vec) Name() string {
	return name
}

// Nth returns the element at index i.
func (v *vec) Nth(i int) (any, bool) {
	if i < 0 || i >= len(v.items) {
		return nil, false
	}

	return v.items[i], true
}

// String returns the literal representation of the vector v.
func (v *vec) String() string {
	return v.Literal()
}

// Is returns true if o is a vector.
func Is(o any) bool {
	_, ok := o.(*vec)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vec

	// The vec type is a cell.
	_ = cell.I(&t)

	// The vec type has a literal representation.
	_ = literal.I(&t)

	// The vec type is sequential.
	_ = common.Sequential(&t)
}
