// Released under an MIT license. See LICENSE.

// Package literal defines the interface for sprig values that can be expressed as literals.
package literal

import (
	"fmt"
	"math/big"
	"strconv"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the readable representation of v. Values read back by the
// reader print the way they were written.
func String(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case I:
		return v.Literal()
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		for _, r := range s {
			if r == '.' || r == 'e' || r == 'n' || r == 'I' {
				return s
			}
		}

		return s + ".0"
	case *big.Int:
		return v.String() + "N"
	case string:
		return strconv.Quote(v)
	case error:
		return "#error " + strconv.Quote(v.Error())
	}

	return fmt.Sprintf("#object[%T %v]", v, v)
}

// Display returns the human readable text of v, as used by str and println.
// Strings are not quoted and nil is the empty string.
func Display(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		if _, ok := v.(I); !ok {
			return v.String()
		}
	}

	return String(v)
}
