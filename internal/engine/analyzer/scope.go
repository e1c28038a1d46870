// Released under an MIT license. See LICENSE.

package analyzer

import (
	"github.com/sprig-lang/sprig/internal/engine/node"
)

type kind int

const (
	toplevel kind = iota // No bindings.
	closure              // Capture point for one function literal.
	root                 // Owns the slots of one activation.
	nested               // Adds one named slot to its root.
)

// scope is one link in the chain of lexical scopes.
type scope struct {
	kind   kind
	parent *scope

	// Toplevel scopes.
	expansions int

	// Closure scopes.
	captured map[string]int
	recipes  []node.Expr

	// Root scopes.
	params map[string]int
	slots  int

	// Root and nested scopes.
	root *scope

	// Nested scopes.
	name string
	slot int
}

func newToplevel() *scope {
	return &scope{kind: toplevel}
}

// capture registers name in the closure s. The value is read in the
// enclosing scope with recipe.
func (s *scope) capture(name string, recipe node.Expr) node.Expr {
	i := len(s.recipes)

	s.captured[name] = i
	s.recipes = append(s.recipes, recipe)

	return &node.CaptureUse{Index: i, Label: name}
}

// outermost returns the toplevel scope that s descends from.
func (s *scope) outermost() *scope {
	for s.parent != nil {
		s = s.parent
	}

	return s
}

// lookup walks from s outwards until it finds name. It returns the
// expression that reads name where it was found and the closures crossed
// on the way, innermost first.
func (s *scope) lookup(name string) (found node.Expr, crossed []*scope) {
	for ; s != nil; s = s.parent {
		switch s.kind {
		case nested:
			if s.name == name {
				return &node.LocalUse{Label: name, Slot: s.slot}, crossed
			}
		case root:
			if slot, ok := s.params[name]; ok {
				return &node.LocalUse{Label: name, Slot: slot}, crossed
			}
		case closure:
			if i, ok := s.captured[name]; ok {
				return &node.CaptureUse{Index: i, Label: name}, crossed
			}

			crossed = append(crossed, s)
		case toplevel:
		}
	}

	return nil, nil
}

// push returns a nested scope binding name to a new slot.
func (s *scope) push(name string) *scope {
	r := s.root

	n := &scope{
		kind:   nested,
		parent: s,
		root:   r,
		name:   name,
		slot:   r.slots,
	}

	r.slots++

	return n
}

// pushClosure returns a capture point for a function literal.
func (s *scope) pushClosure() *scope {
	return &scope{
		kind:     closure,
		parent:   s,
		captured: map[string]int{},
	}
}

// pushFunction returns the root scope for one method. Unless the method
// is static, slot 0 holds the function itself and is named self. The
// remaining params follow in order.
func (s *scope) pushFunction(static bool, self string, params []string) (*scope, []int) {
	r := &scope{
		kind:   root,
		parent: s,
		params: map[string]int{},
	}

	r.root = r

	if !static {
		if self != "" {
			r.params[self] = 0
		}

		r.slots = 1
	}

	slots := make([]int, len(params))
	for i, p := range params {
		slots[i] = r.slots
		r.params[p] = r.slots
		r.slots++
	}

	return r, slots
}

// resolve returns the expression that reads name from s, if name is
// bound locally or in an enclosing function. Each closure crossed on the
// way captures name once, outermost first.
func (s *scope) resolve(name string) (node.Expr, bool) {
	found, crossed := s.lookup(name)
	if found == nil {
		return nil, false
	}

	for i := len(crossed) - 1; i >= 0; i-- {
		found = crossed[i].capture(name, found)
	}

	return found, true
}

// shadows returns true if name is bound locally or in an enclosing
// function. Nothing is captured.
func (s *scope) shadows(name string) bool {
	found, _ := s.lookup(name)

	return found != nil
}
