// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"sync/atomic"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/kw"
	"github.com/sprig-lang/sprig/internal/common/type/sym"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

//nolint:gochecknoglobals
var gensyms int64

func gensym(args []any) (any, error) {
	v := validate.Fixed("gensym", args, 0, 1)

	prefix := "G__"
	if len(v) == 1 {
		prefix = text("gensym", v[0])
	}

	n := atomic.AddInt64(&gensyms, 1)

	return sym.New("", prefix+strconv.FormatInt(n, 10)), nil
}

func keyword(args []any) (any, error) {
	v := validate.Fixed("keyword", args, 1, 2)

	if len(v) == 2 {
		return kw.New(text("keyword", v[0]) + "/" + text("keyword", v[1])), nil
	}

	if k, ok := v[0].(*kw.T); ok {
		return k, nil
	}

	return kw.New(text("keyword", v[0])), nil
}

func symbol(args []any) (any, error) {
	v := validate.Fixed("symbol", args, 1, 2)

	if len(v) == 2 {
		return sym.New(text("symbol", v[0]), text("symbol", v[1])), nil
	}

	if y, ok := v[0].(*sym.T); ok {
		return y, nil
	}

	return sym.Parse(text("symbol", v[0])), nil
}

// text returns the name carried by a string, symbol, or keyword.
func text(name string, v any) string {
	switch t := v.(type) {
	case string:
		return t
	case *sym.T:
		return t.String()
	case *kw.T:
		return t.Text()
	}

	panic(failure.Type.New("%s expects a string, got %s", name, common.TypeName(v)))
}
