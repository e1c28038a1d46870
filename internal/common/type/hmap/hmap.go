// Released under an MIT license. See LICENSE.

// Package hmap provides sprig's immutable map type.
//
// Keys are compared with common.Equal so that, for example, 1 and the
// big integer 1 are the same key. Entries keep their insertion order.
package hmap

import (
	"strings"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

const name = "map"

type entry struct {
	k any
	v any
}

// T (hmap) is an association of keys to values.
type T struct {
	entries []entry
}

type hmap = T

// New creates a map from alternating keys and values. A repeated key keeps
// its first position and its last value. An odd count drops the last key.
func New(kvs ...any) *hmap {
	m := &hmap{entries: make([]entry, 0, len(kvs)/2)}

	for i := 0; i+1 < len(kvs); i += 2 {
		m.set(kvs[i], kvs[i+1])
	}

	return m
}

// Assoc returns a copy of m with k associated with v.
func (m *hmap) Assoc(k, v any) *hmap {
	n := &hmap{entries: make([]entry, len(m.entries), len(m.entries)+1)}
	copy(n.entries, m.entries)
	n.set(k, v)

	return n
}

// Count returns the number of entries in m.
func (m *hmap) Count() int {
	return len(m.entries)
}

// Each calls fn with every key and value in insertion order.
func (m *hmap) Each(fn func(k, v any)) {
	for _, e := range m.entries {
		fn(e.k, e.v)
	}
}

// Equal returns true if o is a map with the same keys mapped to equal values.
func (m *hmap) Equal(o any) bool {
	n, ok := o.(*hmap)
	if !ok || n.Count() != m.Count() {
		return false
	}

	for _, e := range m.entries {
		v, found := n.Get(e.k)
		if !found || !common.Equal(e.v, v) {
			return false
		}
	}

	return true
}

// Get returns the value associated with k.
func (m *hmap) Get(k any) (any, bool) {
	i := m.index(k)
	if i < 0 {
		return nil, false
	}

	return m.entries[i].v, true
}

// Literal returns the literal representation of the map m.
func (m *hmap) Literal() string {
	s := make([]string, len(m.entries))

	for i, e := range m.entries {
		s[i] = literal.String(e.k) + " " + literal.String(e.v)
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// Name returns the type name for maps.
func (m *hmap) Name() string {
	return name
}

// String returns the literal representation of the map m.
func (m *hmap) String() string {
	return m.Literal()
}

func (m *hmap) index(k any) int {
	for i, e := range m.entries {
		if common.Equal(e.k, k) {
			return i
		}
	}

	return -1
}

func (m *hmap) set(k, v any) {
	if i := m.index(k); i >= 0 {
		m.entries[i].v = v

		return
	}

	m.entries = append(m.entries, entry{k: k, v: v})
}

// Is returns true if o is a map.
func Is(o any) bool {
	_, ok := o.(*hmap)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t hmap

	// The hmap type is a cell.
	_ = cell.I(&t)

	// The hmap type has a literal representation.
	_ = literal.I(&t)
}
