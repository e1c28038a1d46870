// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/host"
)

// Member calls a member of the value of Target. The member is resolved
// against the runtime type of the receiver on every call.
type Member struct {
	Args   []Expr
	Host   *host.Registry
	Name   string
	Target Expr
}

// Eval evaluates m in f.
func (m *Member) Eval(f *frame.T) (any, error) {
	r, err := m.Target.Eval(f)
	if err != nil {
		return nil, err
	}

	args, err := evalAll(f, m.Args)
	if err != nil {
		return nil, err
	}

	return m.Host.InvokeMember(r, m.Name, args)
}

// New constructs an instance of Class.
type New struct {
	Args  []Expr
	Class *host.Class
	Host  *host.Registry
}

// Eval evaluates n in f.
func (n *New) Eval(f *frame.T) (any, error) {
	args, err := evalAll(f, n.Args)
	if err != nil {
		return nil, err
	}

	return n.Host.Construct(n.Class, args)
}

// StaticField reads a static field of Class.
type StaticField struct {
	Class *host.Class
	Field string
	Host  *host.Registry
}

// Eval returns the field's value.
func (s *StaticField) Eval(*frame.T) (any, error) {
	return s.Host.ReadStaticField(s.Class, s.Field)
}
