// Released under an MIT license. See LICENSE.

package host

import (
	"math"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joomcode/errorx"
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/interface/literal"
)

// StringBuilder is the mutable string buffer behind the StringBuilder class.
type StringBuilder struct {
	strings.Builder
}

// Append adds the display text of v to the buffer and returns the buffer.
func (b *StringBuilder) Append(v any) *StringBuilder {
	b.WriteString(literal.Display(v))
	return b
}

// Length returns the number of bytes in the buffer.
func (b *StringBuilder) Length() int64 {
	return int64(b.Len())
}

// ToString returns the buffer's contents.
func (b *StringBuilder) ToString() string {
	return b.String()
}

//nolint:gochecknoglobals
var taxonomy = []struct {
	name string
	t    *errorx.Type
}{
	{"ArityMismatchError", failure.ArityMismatch},
	{"DefinitionConflictError", failure.DefinitionConflict},
	{"InteropError", failure.Interop},
	{"PrivacyError", failure.Privacy},
	{"ReaderError", failure.Reader},
	{"RecurArityError", failure.RecurArity},
	{"ResolutionError", failure.Resolution},
	{"SyntaxError", failure.Syntax},
	{"TypeError", failure.Type},
}

func standard(r *Registry) {
	r.Define(NewClass("Object", nil).Matching(func(v any) bool {
		return v != nil
	}))

	r.Define(NewClass("Boolean", reflect.TypeOf(false)))
	r.Define(NewClass("Double", reflect.TypeOf(float64(0))))
	r.Define(NewClass("Long", reflect.TypeOf(int64(0))))

	str := r.Define(NewClass("String", reflect.TypeOf("")))
	strs(r, str)

	r.Define(NewClass("StringBuilder", reflect.TypeOf(&StringBuilder{})).
		Constructor(func(init ...any) *StringBuilder {
			b := &StringBuilder{}
			for _, v := range init {
				b.Append(v)
			}

			return b
		}))

	errorType := reflect.TypeOf((*error)(nil)).Elem()

	r.Define(NewClass("Throwable", errorType))
	r.Define(NewClass("Exception", errorType).
		Constructor(func(msg string) error {
			return failure.Thrown.New("%s", msg)
		}))

	for _, e := range taxonomy {
		t := e.t
		r.Define(NewClass(e.name, errorType).Matching(func(v any) bool {
			err, ok := v.(error)
			return ok && errorx.IsOfType(err, t)
		}))
	}

	r.Define(NewClass("ExceptionInfo", errorType).Matching(func(v any) bool {
		err, ok := v.(error)
		return ok && errorx.IsOfType(err, failure.Info)
	}))

	r.Define(NewClass("Math", nil).
		Field("E", math.E).
		Field("PI", math.Pi).
		Method("abs", abs).
		Method("ceil", math.Ceil).
		Method("floor", math.Floor).
		Method("max", math.Max).
		Method("min", math.Min).
		Method("pow", math.Pow).
		Method("sqrt", math.Sqrt))

	system := NewClass("System", nil).
		Method("currentTimeMillis", func() int64 {
			return time.Now().UnixMilli()
		}).
		Method("getenv", func(name string) any {
			v, ok := os.LookupEnv(name)
			if !ok {
				return nil
			}

			return v
		}).
		Method("nanoTime", func() int64 {
			return time.Now().UnixNano()
		})

	r.Define(process(system))
}

func abs(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		if n < 0 {
			return -n, nil
		}

		return n, nil
	case float64:
		return math.Abs(n), nil
	}

	return nil, failure.Type.New("abs expects a number, got %s", common.TypeName(v))
}

func strs(r *Registry, c *Class) {
	r.Helper(c, "contains", strings.Contains)
	r.Helper(c, "endsWith", strings.HasSuffix)
	r.Helper(c, "indexOf", func(s, sub string) int64 {
		return int64(strings.Index(s, sub))
	})
	r.Helper(c, "length", func(s string) int64 {
		return int64(len(s))
	})
	r.Helper(c, "startsWith", strings.HasPrefix)
	r.Helper(c, "substring", func(s string, bounds ...int64) (string, error) {
		start, end := int64(0), int64(len(s))

		switch len(bounds) {
		case 2:
			end = bounds[1]

			fallthrough
		case 1:
			start = bounds[0]
		}

		if start < 0 || end > int64(len(s)) || start > end {
			return "", failure.Interop.New("substring bounds out of range: %d, %d", start, end)
		}

		return s[start:end], nil
	})
	r.Helper(c, "toLowerCase", strings.ToLower)
	r.Helper(c, "toUpperCase", strings.ToUpper)
	r.Helper(c, "trim", strings.TrimSpace)
}
