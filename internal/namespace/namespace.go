// Released under an MIT license. See LICENSE.

// Package namespace provides sprig's global store: namespaces of vars.
//
// Every namespace sees its own vars, the public vars of the namespaces it
// refers, and the public vars of namespaces reached through a qualified
// symbol or an alias. Private vars are only visible from their own
// namespace.
package namespace

import (
	"sort"
	"sync"

	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
)

const name = "namespace"

// T (namespace) maps names to vars.
type T struct {
	sync.RWMutex

	aliases  map[string]*T
	mappings map[string]*Var
	name     string
	refers   []*T
}

type namespace = T

func newNamespace(name string) *namespace {
	return &namespace{
		aliases:  map[string]*T{},
		mappings: map[string]*Var{},
		name:     name,
	}
}

// Alias makes target reachable from ns as alias.
func (ns *namespace) Alias(alias string, target *T) {
	ns.Lock()
	defer ns.Unlock()

	ns.aliases[alias] = target
}

// Equal returns true if o is the same namespace as ns.
func (ns *namespace) Equal(o any) bool {
	other, ok := o.(*namespace)

	return ok && other == ns
}

// Literal returns the literal representation of the namespace ns.
func (ns *namespace) Literal() string {
	return "#namespace[" + ns.name + "]"
}

// Lookup returns the var named base owned by ns, if any.
func (ns *namespace) Lookup(base string) *Var {
	ns.RLock()
	defer ns.RUnlock()

	return ns.mappings[base]
}

// LookupOrIntern returns the var named base owned by ns. If there is no
// such var and create is true, a new unbound var is interned.
func (ns *namespace) LookupOrIntern(base string, create bool) *Var {
	if v := ns.Lookup(base); v != nil || !create {
		return v
	}

	ns.Lock()
	defer ns.Unlock()

	v, ok := ns.mappings[base]
	if !ok {
		v = newVar(ns, base)
		ns.mappings[base] = v
	}

	return v
}

// Name returns the type name for the namespace ns.
func (ns *namespace) Name() string {
	return name
}

// Names returns the sorted names of the vars owned by ns.
func (ns *namespace) Names() []string {
	ns.RLock()
	defer ns.RUnlock()

	names := make([]string, 0, len(ns.mappings))
	for k := range ns.mappings {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Refer makes the public vars of other visible, unqualified, from ns.
func (ns *namespace) Refer(other *T) {
	if other == ns {
		return
	}

	ns.Lock()
	defer ns.Unlock()

	for _, r := range ns.refers {
		if r == other {
			return
		}
	}

	ns.refers = append(ns.refers, other)
}

func (ns *namespace) String() string {
	return ns.name
}

// Text returns the name of the namespace ns.
func (ns *namespace) Text() string {
	return ns.name
}

func (ns *namespace) alias(alias string) *T {
	ns.RLock()
	defer ns.RUnlock()

	return ns.aliases[alias]
}

func (ns *namespace) referred() []*T {
	ns.RLock()
	defer ns.RUnlock()

	return append([]*T(nil), ns.refers...)
}

// Store holds every namespace and tracks the current one.
type Store struct {
	sync.RWMutex

	core       *T
	current    *T
	namespaces map[string]*T
}

// NewStore creates a store whose namespaces all refer the namespace core.
// The core namespace starts out as the current namespace.
func NewStore(core string) *Store {
	s := &Store{namespaces: map[string]*T{}}

	s.core = s.FindOrCreate(core)
	s.current = s.core

	return s
}

// Core returns the namespace referred by every other namespace.
func (s *Store) Core() *T {
	return s.core
}

// Current returns the current namespace.
func (s *Store) Current() *T {
	s.RLock()
	defer s.RUnlock()

	return s.current
}

// Find returns the namespace called name, or nil.
func (s *Store) Find(name string) *T {
	s.RLock()
	defer s.RUnlock()

	return s.namespaces[name]
}

// FindOrCreate returns the namespace called name, creating it if needed.
func (s *Store) FindOrCreate(name string) *T {
	if ns := s.Find(name); ns != nil {
		return ns
	}

	s.Lock()
	defer s.Unlock()

	ns, ok := s.namespaces[name]
	if !ok {
		ns = newNamespace(name)
		if s.core != nil {
			ns.Refer(s.core)
		}

		s.namespaces[name] = ns
	}

	return ns
}

// InNamespace makes the namespace called name current, creating it if
// needed, and returns it.
func (s *Store) InNamespace(name string) *T {
	ns := s.FindOrCreate(name)

	s.Lock()
	s.current = ns
	s.Unlock()

	return ns
}

// Resolve finds the var named by sy as seen from the namespace from.
// An unqualified symbol that names nothing yields nil and no error.
// A qualified symbol must name an existing var that from may see.
func (s *Store) Resolve(from *T, sy *sym.T) (*Var, error) {
	if !sy.Qualified() {
		if v := from.Lookup(sy.Base()); v != nil {
			return v, nil
		}

		for _, r := range from.referred() {
			if v := r.Lookup(sy.Base()); v != nil && !v.IsPrivate() {
				return v, nil
			}
		}

		return nil, nil
	}

	target := from.alias(sy.Namespace())
	if target == nil {
		target = s.Find(sy.Namespace())
	}

	if target == nil {
		return nil, failure.Resolution.New("no such namespace: %s", sy.Namespace())
	}

	v := target.Lookup(sy.Base())
	if v == nil {
		return nil, failure.Resolution.New("no such var: %s", sy)
	}

	if v.IsPrivate() && target != from {
		return nil, failure.Privacy.New("var: %s is not public", v.Literal())
	}

	return v, nil
}
