// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/validate"
	"github.com/sprig-lang/sprig/internal/engine/node"
	"github.com/sprig-lang/sprig/internal/host"
	"github.com/sprig-lang/sprig/internal/namespace"

	"github.com/joomcode/errorx"
)

func (e *Env) alias(args []any) (any, error) {
	v := validate.Fixed("alias", args, 2, 2)

	target := e.Store.Find(text("alias", v[1]))
	if target == nil {
		return nil, failure.Resolution.New("no namespace: %s found", text("alias", v[1]))
	}

	e.Store.Current().Alias(text("alias", v[0]), target)

	return nil, nil
}

func (e *Env) class(args []any) (any, error) {
	v := validate.Fixed("class", args, 1, 1)

	if c := e.Host.ClassOf(v[0]); c != nil {
		return c, nil
	}

	return nil, nil
}

func (e *Env) eval(args []any) (any, error) {
	v := validate.Fixed("eval", args, 1, 1)

	return e.Eval(v[0])
}

func (e *Env) inNs(args []any) (any, error) {
	v := validate.Fixed("in-ns", args, 1, 1)

	return e.Store.InNamespace(text("in-ns", v[0])), nil
}

func (e *Env) macroexpand1(args []any) (any, error) {
	v := validate.Fixed("macroexpand-1", args, 1, 1)

	return e.Expand(v[0])
}

func apply(args []any) (any, error) {
	v, rest := validate.Variadic("apply", args, 2, 1)

	last := len(rest) - 1
	spread := append(append([]any{}, rest[:last]...), items("apply", rest[last])...)

	return node.Apply(v[0], spread)
}

func deref(args []any) (any, error) {
	v := validate.Fixed("deref", args, 1, 1)

	return toVar("deref", v[0]).Deref()
}

func exData(args []any) (any, error) {
	v := validate.Fixed("ex-data", args, 1, 1)

	err, ok := v[0].(error)
	if !ok {
		return nil, nil
	}

	if data, ok := errorx.ExtractProperty(err, failure.Data); ok {
		return data, nil
	}

	return nil, nil
}

func exInfo(args []any) (any, error) {
	v := validate.Fixed("ex-info", args, 2, 2)

	msg, ok := v[0].(string)
	if !ok {
		return nil, failure.Type.New("ex-info expects a message string")
	}

	data, ok := v[1].(*hmap.T)
	if !ok && v[1] != nil {
		return nil, failure.Type.New("ex-info expects a map of data")
	}

	if data == nil {
		data = hmap.New()
	}

	return failure.Info.New("%s", msg).WithProperty(failure.Data, data), nil
}

func exMessage(args []any) (any, error) {
	v := validate.Fixed("ex-message", args, 1, 1)

	if err, ok := v[0].(error); ok {
		return failure.Message(err), nil
	}

	return nil, nil
}

func identity(args []any) (any, error) {
	v := validate.Fixed("identity", args, 1, 1)

	return v[0], nil
}

func isInstance(args []any) (any, error) {
	v := validate.Fixed("instance?", args, 2, 2)

	c, ok := v[0].(*host.Class)
	if !ok {
		return nil, failure.Type.New("instance? expects a class, got %s", common.TypeName(v[0]))
	}

	return c.IsInstance(v[1]), nil
}

func isNil(args []any) (any, error) {
	v := validate.Fixed("nil?", args, 1, 1)

	return v[0] == nil, nil
}

func setMacro(args []any) (any, error) {
	v := validate.Fixed("set-macro!", args, 1, 1)

	r := toVar("set-macro!", v[0])
	r.SetMacro(true)

	return r, nil
}

func setPrivate(args []any) (any, error) {
	v := validate.Fixed("set-private!", args, 1, 1)

	r := toVar("set-private!", v[0])
	r.SetPrivate(true)

	return r, nil
}

func typeOf(args []any) (any, error) {
	v := validate.Fixed("type", args, 1, 1)

	return common.TypeName(v[0]), nil
}

func toVar(name string, v any) *namespace.Var {
	r, ok := v.(*namespace.Var)
	if !ok {
		panic(failure.Type.New("%s expects a var, got %s", name, common.TypeName(v)))
	}

	return r
}
