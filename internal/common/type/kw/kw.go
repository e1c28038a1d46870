// Released under an MIT license. See LICENSE.

// Package kw provides sprig's keyword type.
package kw

import (
	"sync"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

const name = "keyword"

// T (kw) is an interned keyword. Keywords evaluate to themselves.
type T struct {
	text string
}

type kw = T

//nolint:gochecknoglobals
var keywords sync.Map

// New returns the interned keyword for text, which excludes the leading colon.
func New(text string) *kw {
	k, _ := keywords.LoadOrStore(text, &kw{text: text})

	return k.(*kw)
}

// Equal returns true if v is the same keyword as k.
func (k *kw) Equal(v any) bool {
	o, ok := v.(*kw)

	return ok && o == k
}

// Literal returns the literal representation of the keyword k.
func (k *kw) Literal() string {
	return ":" + k.text
}

// Name returns the type name for keywords.
func (k *kw) Name() string {
	return name
}

// String returns the literal representation of the keyword k.
func (k *kw) String() string {
	return k.Literal()
}

// Text returns the keyword's name without the colon.
func (k *kw) Text() string {
	return k.text
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t kw

	// The kw type is a cell.
	_ = cell.I(&t)

	// The kw type has a literal representation.
	_ = literal.I(&t)

	// The kw type is a stringer.
	_ = common.Stringer(&t)
}
