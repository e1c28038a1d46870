// Released under an MIT license. See LICENSE.

// Package common provides the helpers that apply to every sprig value.
package common

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/nukata/goarith"
	"github.com/sprig-lang/sprig/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// Sequential is implemented by ordered collections that compare element-wise.
type Sequential interface {
	Items() []any
}

// Equal reports whether a and b are equal values. Numbers compare by value,
// sequential collections compare element-wise, and everything else
// compares with its own Equal method or Go's ==.
func Equal(a, b any) bool {
	if IsNumber(a) && IsNumber(b) {
		return AsNumber(a).Cmp(AsNumber(b)) == 0
	}

	if sa, ok := a.(Sequential); ok {
		if sb, ok := b.(Sequential); ok {
			return itemsEqual(sa.Items(), sb.Items())
		}

		return false
	}

	if c, ok := a.(cell.I); ok {
		return c.Equal(b)
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// AsNumber converts a sprig number to a goarith.Number. It returns nil if
// v is not a number.
func AsNumber(v any) goarith.Number {
	switch n := v.(type) {
	case int64:
		if int64(int(n)) == n {
			return goarith.AsNumber(int(n))
		}

		return goarith.AsNumber(big.NewInt(n))
	case int, float64, *big.Int:
		return goarith.AsNumber(n)
	}

	return nil
}

// IsNumber returns true if v is one of the numeric types sprig produces.
func IsNumber(v any) bool {
	switch v.(type) {
	case int64, int, float64, *big.Int:
		return true
	}

	return false
}

// Truthy returns false only for nil and false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	return true
}

// TypeName returns the name of v's type as seen from sprig.
func TypeName(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case cell.I:
		return v.Name()
	case bool:
		return "boolean"
	case int64, int:
		return "long"
	case float64:
		return "double"
	case *big.Int:
		return "bigint"
	case string:
		return "string"
	case error:
		return "error"
	}

	return reflect.TypeOf(v).String()
}

func itemsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
