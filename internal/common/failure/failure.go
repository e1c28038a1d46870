// Released under an MIT license. See LICENSE.

// Package failure defines sprig's error taxonomy.
//
// Analysis errors are raised with panic by the analyzer and recovered at the
// top-level form boundary. Runtime errors are returned like any Go error and
// are what try/catch sees as thrown values.
package failure

import (
	"github.com/joomcode/errorx"
)

//nolint:gochecknoglobals
var (
	// Errors is the namespace for every sprig error type.
	Errors = errorx.NewNamespace("sprig")

	// Syntax is a malformed special form.
	Syntax = Errors.NewType("syntax_error")
	// Resolution is an unresolvable symbol, class, or var.
	Resolution = Errors.NewType("resolution_error")
	// DefinitionConflict is a clash between the clauses of one fn, or a
	// def of a name that already refers to a var of another namespace.
	DefinitionConflict = Errors.NewType("definition_conflict")
	// RecurArity is a recur with the wrong number of arguments.
	RecurArity = Errors.NewType("recur_arity")
	// ArityMismatch is a call with an unsupported argument count.
	ArityMismatch = Errors.NewType("arity_mismatch")
	// Interop is a failed construction or member access.
	Interop = Errors.NewType("interop_error")
	// Privacy is a reference to another namespace's private var.
	Privacy = Errors.NewType("privacy_error")
	// Type is an operation applied to a value of the wrong type.
	Type = Errors.NewType("type_error")
	// Thrown carries a non-error value passed to throw.
	Thrown = Errors.NewType("thrown")
	// Reader is malformed source text.
	Reader = Errors.NewType("reader_error")
	// Incomplete is source text that ends inside a form.
	Incomplete = Errors.NewType("incomplete")
	// Info is an error created by ex-info.
	Info = Errors.NewType("exception_info")

	// Value is the property holding a thrown non-error value.
	Value = errorx.RegisterProperty("value")
	// Data is the property holding an ex-info data map.
	Data = errorx.RegisterProperty("data")
)

// Throw converts v into the error that represents it while it propagates.
func Throw(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return Thrown.New("%v", v).WithProperty(Value, v)
}

// Caught returns the value a catch clause binds for err: the original value
// for thrown non-errors and the error itself otherwise.
func Caught(err error) any {
	if errorx.IsOfType(err, Thrown) {
		if v, ok := errorx.ExtractProperty(err, Value); ok {
			return v
		}
	}

	return err
}

// Is returns true if err is of type t.
func Is(err error, t *errorx.Type) bool {
	return errorx.IsOfType(err, t)
}

// Message returns the message of err without its type prefix.
func Message(err error) string {
	if e := errorx.Cast(err); e != nil {
		return e.Message()
	}

	return err.Error()
}
