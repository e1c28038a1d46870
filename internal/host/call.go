// Released under an MIT license. See LICENSE.

package host

import (
	"fmt"
	"reflect"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
)

//nolint:gochecknoglobals
var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// call invokes fn with args, converting numbers to the parameter types fn
// expects. Panics raised by reflection or by fn become interop errors.
func call(label string, fn reflect.Value, args []any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failure.Interop.New("%s: %v", label, r)
		}
	}()

	t := fn.Type()

	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, arity(label, len(args))
		}
	} else if len(args) != n {
		return nil, arity(label, len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}

		v, err := convert(a, pt)
		if err != nil {
			return nil, failure.Interop.Wrap(err, "%s: argument %d", label, i+1)
		}

		in[i] = v
	}

	return results(fn.Call(in))
}

func arity(label string, n int) error {
	return failure.ArityMismatch.New(
		"wrong number of args (%d) passed to: %s", n, label,
	)
}

func convert(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}

	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}

	if numeric(v.Kind()) && numeric(pt.Kind()) {
		return v.Convert(pt), nil
	}

	return reflect.Value{}, fmt.Errorf(
		"cannot use %s as %s", common.TypeName(a), pt,
	)
}

func normalize(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}

	return v.Interface()
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func results(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error) //nolint:forcetypeassert
		}

		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return normalize(out[0]), nil
	}

	values := make([]any, len(out))
	for i, v := range out {
		values[i] = normalize(v)
	}

	return vec.New(values...), nil
}
