// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

func (e *Env) print(args []any) (any, error) {
	_, err := fmt.Fprint(e.Out, join(literal.Display, args))

	return nil, err
}

func (e *Env) println(args []any) (any, error) {
	_, err := fmt.Fprintln(e.Out, join(literal.Display, args))

	return nil, err
}

func (e *Env) prn(args []any) (any, error) {
	_, err := fmt.Fprintln(e.Out, join(literal.String, args))

	return nil, err
}

func prStr(args []any) (any, error) {
	return join(literal.String, args), nil
}

func str(args []any) (any, error) {
	var b strings.Builder

	for _, a := range args {
		b.WriteString(literal.Display(a))
	}

	return b.String(), nil
}

func join(f func(any) string, args []any) string {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = f(a)
	}

	return strings.Join(s, " ")
}
