// Released under an MIT license. See LICENSE.

package node

import (
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/host"
)

// Catch handles values that are instances of Class. The caught value is
// stored in Slot while Body runs.
type Catch struct {
	Body  Expr
	Class *host.Class
	Slot  int
}

// Throw raises the value of its operand.
type Throw struct {
	Value Expr
}

// Eval evaluates t in f.
func (t *Throw) Eval(f *frame.T) (any, error) {
	v, err := t.Value.Eval(f)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, failure.Type.New("cannot throw nil")
	}

	return nil, failure.Throw(v)
}

// Try evaluates Body, handing a failure to the first matching catch.
// Finally, when present, runs exactly once on every path out.
type Try struct {
	Body    Expr
	Catches []*Catch
	Finally Expr
}

// Eval evaluates t in f. A finally clause that fails replaces the result.
func (t *Try) Eval(f *frame.T) (any, error) {
	v, err := t.Body.Eval(f)
	if err != nil && !IsRepeat(err) {
		caught := failure.Caught(err)

		for _, c := range t.Catches {
			if c.Class.IsInstance(caught) {
				f.Set(c.Slot, caught)

				v, err = c.Body.Eval(f)

				break
			}
		}
	}

	if t.Finally != nil {
		if _, ferr := t.Finally.Eval(f); ferr != nil {
			return nil, ferr
		}
	}

	return v, err
}
