// Released under an MIT license. See LICENSE.

package namespace

import (
	"sync"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
)

const varname = "var"

// Var is a mutable, namespace-owned cell holding a global value.
type Var struct {
	sync.RWMutex

	bound   bool
	macro   bool
	ns      *T
	private bool
	symbol  *sym.T
	value   any
}

func newVar(ns *T, base string) *Var {
	return &Var{ns: ns, symbol: sym.New(ns.name, base)}
}

// Bound returns true if the var v has been given a value.
func (v *Var) Bound() bool {
	v.RLock()
	defer v.RUnlock()

	return v.bound
}

// Deref returns the value of the var v or an error if v is unbound.
func (v *Var) Deref() (any, error) {
	v.RLock()
	defer v.RUnlock()

	if !v.bound {
		return nil, failure.Resolution.New("unbound var: %s", v.Literal())
	}

	return v.value, nil
}

// Equal returns true if o is the same var as v.
func (v *Var) Equal(o any) bool {
	ov, ok := o.(*Var)

	return ok && ov == v
}

// Get returns the value of the var v, or nil if v is unbound.
func (v *Var) Get() any {
	v.RLock()
	defer v.RUnlock()

	return v.value
}

// IsMacro returns true if the var v holds a macro.
func (v *Var) IsMacro() bool {
	v.RLock()
	defer v.RUnlock()

	return v.macro
}

// IsPrivate returns true if v is hidden from other namespaces.
func (v *Var) IsPrivate() bool {
	v.RLock()
	defer v.RUnlock()

	return v.private
}

// Literal returns the literal representation of the var v.
func (v *Var) Literal() string {
	return "#'" + v.symbol.String()
}

// Name returns the type name for the var v.
func (v *Var) Name() string {
	return varname
}

// Namespace returns the namespace that owns the var v.
func (v *Var) Namespace() *T {
	return v.ns
}

// Set binds the var v to value.
func (v *Var) Set(value any) {
	v.Lock()
	defer v.Unlock()

	v.bound = true
	v.value = value
}

// SetMacro flags the var v as holding a macro, or clears the flag.
func (v *Var) SetMacro(b bool) {
	v.Lock()
	defer v.Unlock()

	v.macro = b
}

// SetPrivate flags the var v as private, or clears the flag.
func (v *Var) SetPrivate(b bool) {
	v.Lock()
	defer v.Unlock()

	v.private = b
}

func (v *Var) String() string {
	return v.Literal()
}

// Symbol returns the fully qualified symbol naming the var v.
func (v *Var) Symbol() *sym.T {
	return v.symbol
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Var

	// The Var type is a cell.
	_ = cell.I(&t)

	// The Var type has a literal representation.
	_ = literal.I(&t)

	// The Var type is a stringer.
	_ = common.Stringer(&t)
}
