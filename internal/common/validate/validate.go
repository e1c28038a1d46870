// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to native functions.
// A failed check panics with an arity mismatch error.
package validate

import (
	"fmt"

	"github.com/sprig-lang/sprig/internal/common/failure"
)

// Fixed returns args if name was passed between min and max args.
func Fixed(name string, args []any, min, max int) []any {
	n := len(args)
	if n < min || n > max {
		s := Count(max, "argument", "s")
		if min != max {
			s = fmt.Sprintf("%d to %s", min, s)
		}

		panic(mismatch(name, n, s))
	}

	return args
}

// Variadic splits args into the first max args and the rest. It panics
// if name was passed fewer than min args.
func Variadic(name string, args []any, min, max int) ([]any, []any) {
	n := len(args)
	if n < min {
		panic(mismatch(name, n, "at least "+Count(min, "argument", "s")))
	}

	if n > max {
		return args[:max], args[max:]
	}

	return args, nil
}

// Count formats n with label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func mismatch(name string, n int, expected string) error {
	return failure.ArityMismatch.New(
		"wrong number of args (%d) passed to: %s, expected %s", n, name, expected,
	)
}
