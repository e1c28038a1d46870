// Released under an MIT license. See LICENSE.

// Package host lets sprig code construct and call into Go values.
//
// Classes are registered by name. Members are found by reflection: the
// exact method name, then the name with its first letter capitalized,
// then helper methods registered for the receiver's class, and finally
// exported struct fields.
package host

import (
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

// Registry holds the classes visible to sprig code.
type Registry struct {
	sync.RWMutex

	classes map[string]*Class
	helpers map[*Class]map[string]any
	order   []*Class
}

// New creates a registry holding the standard classes.
func New() *Registry {
	r := &Registry{
		classes: map[string]*Class{},
		helpers: map[*Class]map[string]any{},
	}

	standard(r)

	return r
}

// ClassOf returns the most recently defined class that v is an instance of.
func (r *Registry) ClassOf(v any) *Class {
	r.RLock()
	defer r.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		if c := r.order[i]; c.IsInstance(v) {
			return c
		}
	}

	return nil
}

// Construct creates a new instance of c from args.
func (r *Registry) Construct(c *Class, args []any) (any, error) {
	if c.ctor == nil {
		return nil, failure.Interop.New("no constructor for class: %s", c.name)
	}

	return call(c.name+".", reflect.ValueOf(c.ctor), args)
}

// Define adds c to the registry, replacing any class with the same name.
func (r *Registry) Define(c *Class) *Class {
	r.Lock()
	defer r.Unlock()

	r.classes[c.name] = c
	r.order = append(r.order, c)

	return c
}

// Helper registers fn as the instance method name for instances of c.
// The receiver is passed to fn as its first argument.
func (r *Registry) Helper(c *Class, name string, fn any) {
	r.Lock()
	defer r.Unlock()

	m, ok := r.helpers[c]
	if !ok {
		m = map[string]any{}
		r.helpers[c] = m
	}

	m[name] = fn
}

// InvokeMember calls the member name of receiver with args. A class
// receiver calls a static method, or reads a static field when no method
// matches and there are no args.
func (r *Registry) InvokeMember(receiver any, name string, args []any) (any, error) {
	if c, ok := receiver.(*Class); ok {
		if fn, ok := c.methods[name]; ok {
			return call(c.name+"/"+name, reflect.ValueOf(fn), args)
		}

		if len(args) == 0 {
			if v, ok := c.fields[name]; ok {
				return v, nil
			}
		}

		return nil, failure.Interop.New("no static member %s for class: %s", name, c.name)
	}

	if receiver == nil {
		return nil, failure.Interop.New("cannot call %s on nil", name)
	}

	label := "." + name

	v := reflect.ValueOf(receiver)
	for _, n := range []string{name, capitalize(name)} {
		if m := v.MethodByName(n); m.IsValid() {
			return call(label, m, args)
		}
	}

	if fn := r.helper(receiver, name); fn != nil {
		return call(label, reflect.ValueOf(fn), append([]any{receiver}, args...))
	}

	if len(args) == 0 {
		if f, ok := field(v, capitalize(name)); ok {
			return f, nil
		}
	}

	switch name {
	case "toString":
		if len(args) == 0 {
			return literal.Display(receiver), nil
		}
	case "getMessage":
		if err, ok := receiver.(error); ok && len(args) == 0 {
			return failure.Message(err), nil
		}
	}

	return nil, failure.Interop.New(
		"no member %s for %s", name, common.TypeName(receiver),
	)
}

// ReadStaticField returns the value of the static field name of c.
func (r *Registry) ReadStaticField(c *Class, name string) (any, error) {
	v, ok := c.fields[name]
	if !ok {
		return nil, failure.Interop.New("no static field %s for class: %s", name, c.name)
	}

	return v, nil
}

// ResolveClass returns the class called name, or nil.
func (r *Registry) ResolveClass(name string) *Class {
	r.RLock()
	defer r.RUnlock()

	return r.classes[name]
}

func (r *Registry) helper(receiver any, name string) any {
	r.RLock()
	defer r.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.order[i]
		if fn, ok := r.helpers[c][name]; ok && c.IsInstance(receiver) {
			return fn
		}
	}

	return nil
}

func capitalize(s string) string {
	r, w := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[w:]
}

func field(v reflect.Value, name string) (any, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, false
	}

	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}

	return normalize(f), true
}
