// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/common/type/list"
)

// MaxPositionalArity is the largest number of fixed parameters a method
// may declare.
const MaxPositionalArity = 20

const fnname = "function"

// Method is one clause of a function literal, or a top-level form.
type Method struct {
	Arity    int  // Number of fixed parameters.
	Body     Expr // Analyzed body.
	Slots    int  // Frame size.
	Static   bool // No self slot.
	Variadic bool // Trailing rest parameter.
}

// Call runs a static method with no arguments in a fresh frame.
func (m *Method) Call() (any, error) {
	return m.Body.Eval(frame.New(m.Slots, nil))
}

func (m *Method) invoke(fn *Fn, args []any) (any, error) {
	f := frame.New(m.Slots, fn.captures)

	i := 0
	if !m.Static {
		f.Set(0, fn)

		i = 1
	}

	for _, a := range args[:m.Arity] {
		f.Set(i, a)
		i++
	}

	if m.Variadic {
		var rest any
		if len(args) > m.Arity {
			rest = list.New(args[m.Arity:]...)
		}

		f.Set(i, rest)
	}

	return m.Body.Eval(f)
}

// Fn is a function value: an arity dispatch table, an optional variadic
// method, and the values captured when it was created.
type Fn struct {
	captures []any
	label    string
	methods  []*Method
	variadic *Method
}

// Equal returns true if v is the same function as fn.
func (fn *Fn) Equal(v any) bool {
	o, ok := v.(*Fn)

	return ok && o == fn
}

// Invoke calls fn with args.
func (fn *Fn) Invoke(args []any) (any, error) {
	n := len(args)

	var m *Method
	if n < len(fn.methods) {
		m = fn.methods[n]
	}

	if m == nil && fn.variadic != nil && n >= fn.variadic.Arity {
		m = fn.variadic
	}

	if m == nil {
		return nil, failure.ArityMismatch.New(
			"wrong number of args (%d) passed to: %s", n, fn.Label(),
		)
	}

	return m.invoke(fn, args)
}

// Label returns the function's name, or "fn" if it is anonymous.
func (fn *Fn) Label() string {
	if fn.label == "" {
		return "fn"
	}

	return fn.label
}

// Literal returns the literal representation of the function fn.
func (fn *Fn) Literal() string {
	return "#function[" + fn.Label() + "]"
}

// Name returns the type name for the function fn.
func (fn *Fn) Name() string {
	return fnname
}

func (fn *Fn) String() string {
	return fn.Literal()
}

// Closure creates a function value, capturing values from the frame it is
// evaluated in.
type Closure struct {
	Captures []Expr    // Recipes for captured values, by capture index.
	Label    string    // Name, if any.
	Methods  []*Method // Fixed arity methods, indexed by arity.
	Variadic *Method
}

// Eval evaluates each capture once, in index order.
func (c *Closure) Eval(f *frame.T) (any, error) {
	captures, err := evalAll(f, c.Captures)
	if err != nil {
		return nil, err
	}

	return &Fn{
		captures: captures,
		label:    c.Label,
		methods:  c.Methods,
		variadic: c.Variadic,
	}, nil
}

// Invoke calls the value of Fn with the values of Args.
type Invoke struct {
	Args []Expr
	Fn   Expr
}

// Eval evaluates the callee then the arguments, left to right.
func (i *Invoke) Eval(f *frame.T) (any, error) {
	fn, err := i.Fn.Eval(f)
	if err != nil {
		return nil, err
	}

	args, err := evalAll(f, i.Args)
	if err != nil {
		return nil, err
	}

	return Apply(fn, args)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Fn

	// The Fn type is a cell.
	_ = cell.I(&t)

	// The Fn type has a literal representation.
	_ = literal.I(&t)

	// The Fn type is a stringer.
	_ = common.Stringer(&t)

	// Every node is an Expr.
	for _, e := range []Expr{
		&CaptureUse{}, &Closure{}, &Const{}, &Do{}, &GlobalDef{},
		&GlobalSet{}, &GlobalUse{}, &If{}, &Invoke{}, &LocalDef{},
		&LocalUse{}, &Locking{}, &Loop{}, &Map{}, &Member{}, &New{},
		&Recur{}, &StaticField{}, &Throw{}, &Try{}, &Vector{},
	} {
		_ = e
	}
}
