// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
)

type repeat struct{}

func (repeat) Error() string {
	return "recur outside of a loop"
}

//nolint:gochecknoglobals
var errRepeat error = repeat{}

// IsRepeat returns true if err is the signal raised by recur.
func IsRepeat(err error) bool {
	return err == errRepeat //nolint:errorlint
}

// Loop evaluates Body until it completes without a recur.
type Loop struct {
	Body Expr
}

// Eval evaluates l in f. Each repetition reuses the frame f.
func (l *Loop) Eval(f *frame.T) (any, error) {
	for {
		v, err := l.Body.Eval(f)
		if !IsRepeat(err) {
			return v, err
		}
	}
}

// Recur rebinds the slots of the enclosing loop or method and repeats it.
type Recur struct {
	Args  []Expr
	Slots []int
}

// Eval evaluates every argument before storing any of them.
func (r *Recur) Eval(f *frame.T) (any, error) {
	vs, err := evalAll(f, r.Args)
	if err != nil {
		return nil, err
	}

	for i, s := range r.Slots {
		f.Set(s, vs[i])
	}

	return nil, errRepeat
}

func evalAll(f *frame.T, es []Expr) ([]any, error) {
	vs := make([]any, len(es))

	for i, e := range es {
		v, err := e.Eval(f)
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}
