// Released under an MIT license. See LICENSE.

package host

import (
	"reflect"
)

const classname = "class"

// Class is a handle for a host type. It answers instance checks and
// carries the type's constructor, static fields, and static methods.
type Class struct {
	ctor    any
	fields  map[string]any
	match   func(any) bool
	methods map[string]any
	name    string
	typ     reflect.Type
}

// NewClass creates a class called name whose instances are values
// assignable to typ. A nil typ matches nothing unless Matching is used.
func NewClass(name string, typ reflect.Type) *Class {
	return &Class{
		fields:  map[string]any{},
		methods: map[string]any{},
		name:    name,
		typ:     typ,
	}
}

// Constructor sets the Go function called by new.
func (c *Class) Constructor(fn any) *Class {
	c.ctor = fn
	return c
}

// Equal returns true if o is the same class as c.
func (c *Class) Equal(o any) bool {
	oc, ok := o.(*Class)

	return ok && oc == c
}

// Field adds a static field.
func (c *Class) Field(name string, v any) *Class {
	c.fields[name] = v
	return c
}

// IsInstance returns true if v is an instance of c.
func (c *Class) IsInstance(v any) bool {
	if c.match != nil {
		return c.match(v)
	}

	if v == nil || c.typ == nil {
		return false
	}

	t := reflect.TypeOf(v)
	if c.typ.Kind() == reflect.Interface {
		return t.Implements(c.typ)
	}

	return t.AssignableTo(c.typ)
}

// Literal returns the literal representation of the class c.
func (c *Class) Literal() string {
	return c.name
}

// Matching replaces the instance check for c with fn.
func (c *Class) Matching(fn func(any) bool) *Class {
	c.match = fn
	return c
}

// Method adds a static method.
func (c *Class) Method(name string, fn any) *Class {
	c.methods[name] = fn
	return c
}

// Name returns the type name for the class c.
func (c *Class) Name() string {
	return classname
}

func (c *Class) String() string {
	return c.name
}

// Text returns the name of the class c.
func (c *Class) Text() string {
	return c.name
}
