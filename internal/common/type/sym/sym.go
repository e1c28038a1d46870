// Released under an MIT license. See LICENSE.

// Package sym provides sprig's symbol type. All symbols are interned.
package sym

import (
	"strings"
	"sync"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is a symbol with an optional namespace part.
type T struct {
	ns   string
	base string
}

type sym = T

// New returns the interned symbol with namespace ns and name base.
// An empty ns means the symbol is unqualified.
func New(ns, base string) *sym {
	k := key(ns, base)

	p, ok := symtry(k)
	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[k]; ok {
		return p
	}

	p = &sym{ns: ns, base: base}
	cache[k] = p

	return p
}

// Parse splits s at its first slash into namespace and name. A lone "/"
// and names that start or end with a slash are left unqualified.
func Parse(s string) *sym {
	i := strings.IndexByte(s, '/')
	if i <= 0 || i == len(s)-1 {
		return New("", s)
	}

	return New(s[:i], s[i+1:])
}

// Base returns the name part of the symbol s.
func (s *sym) Base() string {
	return s.base
}

// Equal returns true if v is the same symbol as s.
func (s *sym) Equal(v any) bool {
	o, ok := v.(*sym)

	return ok && o == s
}

// Literal returns the literal representation of the symbol s.
func (s *sym) Literal() string {
	return s.String()
}

// Name returns the type name for the symbol s.
func (s *sym) Name() string {
	return name
}

// Namespace returns the namespace part of the symbol s, if any.
func (s *sym) Namespace() string {
	return s.ns
}

// Qualified returns true if the symbol s has a namespace part.
func (s *sym) Qualified() bool {
	return s.ns != ""
}

// String returns the text of the symbol s.
func (s *sym) String() string {
	return key(s.ns, s.base)
}

// Is returns true if v is a symbol.
func Is(v any) bool {
	_, ok := v.(*sym)

	return ok
}

// To returns v as a symbol or panics.
func To(v any) *sym {
	if s, ok := v.(*sym); ok {
		return s
	}

	panic(common.TypeName(v) + " cannot be used as a " + name)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func key(ns, base string) string {
	if ns == "" {
		return base
	}

	return ns + "/" + base
}

func symtry(k string) (p *sym, ok bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok = cache[k]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
