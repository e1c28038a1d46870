// Released under an MIT license. See LICENSE.

// Package list provides sprig's immutable singly-linked list type.
package list

import (
	"strings"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

const name = "list"

// T (list) is a cons cell that also knows the length of the list it heads.
type T struct {
	first any
	rest  *list
	count int
}

type list = T

// Empty is the empty list. It is the only list with a count of zero.
var Empty = &list{} //nolint:gochecknoglobals

// Cons returns a new list with v in front of l.
func Cons(v any, l *list) *list {
	if l == nil {
		l = Empty
	}

	return &list{first: v, rest: l, count: l.count + 1}
}

// New creates a list composed of all of the elements in elements.
func New(elements ...any) *list {
	l := Empty

	for i := len(elements) - 1; i >= 0; i-- {
		l = Cons(elements[i], l)
	}

	return l
}

// Count returns the number of elements in l.
func (l *list) Count() int {
	return l.count
}

// Equal returns true if v is a sequential collection with equal elements.
func (l *list) Equal(v any) bool {
	return common.Equal(l, v)
}

// First returns the first element of l or nil if l is empty.
func (l *list) First() any {
	return l.first
}

// Items returns the elements of l as a slice.
func (l *list) Items() []any {
	items := make([]any, 0, l.count)

	for p := l; p.count > 0; p = p.rest {
		items = append(items, p.first)
	}

	return items
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	s := make([]string, 0, l.count)

	for p := l; p.count > 0; p = p.rest {
		s = append(s, literal.String(p.first))
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Name returns the type name for lists.
func (l *list) Name() string {
	return name
}

// Next returns the list after the first element, or nil if there is none.
func (l *list) Next() *list {
	if l.count <= 1 {
		return nil
	}

	return l.rest
}

// Rest returns the list after the first element. It is never nil.
func (l *list) Rest() *list {
	if l.count == 0 {
		return Empty
	}

	return l.rest
}

// String returns the literal representation of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Is returns true if v is a list.
func Is(v any) bool {
	_, ok := v.(*list)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is sequential.
	_ = common.Sequential(&t)
}
