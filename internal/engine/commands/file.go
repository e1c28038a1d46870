// Released under an MIT license. See LICENSE.

package commands

import (
	"os"

	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

func slurp(args []any) (any, error) {
	v := validate.Fixed("slurp", args, 1, 1)

	b, err := os.ReadFile(text("slurp", v[0]))
	if err != nil {
		return nil, failure.Interop.Wrap(err, "slurp")
	}

	return string(b), nil
}

func spit(args []any) (any, error) {
	v := validate.Fixed("spit", args, 2, 2)

	err := os.WriteFile(text("spit", v[0]), []byte(literal.Display(v[1])), 0o666) //nolint:gosec
	if err != nil {
		return nil, failure.Interop.Wrap(err, "spit")
	}

	return nil, nil
}
