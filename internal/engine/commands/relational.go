// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

func eq(args []any) (any, error) {
	v, _ := validate.Variadic("=", args, 1, len(args))

	for i := 1; i < len(v); i++ {
		if !common.Equal(v[i-1], v[i]) {
			return false, nil
		}
	}

	return true, nil
}

func ge(args []any) (any, error) {
	return compare(">=", args, func(c int) bool { return c >= 0 }), nil
}

func gt(args []any) (any, error) {
	return compare(">", args, func(c int) bool { return c > 0 }), nil
}

func le(args []any) (any, error) {
	return compare("<=", args, func(c int) bool { return c <= 0 }), nil
}

func lt(args []any) (any, error) {
	return compare("<", args, func(c int) bool { return c < 0 }), nil
}

func notEq(args []any) (any, error) {
	v, err := eq(args)

	return v == false, err
}

func numEq(args []any) (any, error) {
	return compare("==", args, func(c int) bool { return c == 0 }), nil
}

// compare returns true if ok holds for every adjacent pair of args.
func compare(name string, args []any, ok func(int) bool) bool {
	v, _ := validate.Variadic(name, args, 1, len(args))

	for i := 1; i < len(v); i++ {
		if !ok(number(name, v[i-1]).Cmp(number(name, v[i]))) {
			return false
		}
	}

	number(name, v[0])

	return true
}
