// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/type/hmap"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

func assoc(args []any) (any, error) {
	v, kvs := validate.Variadic("assoc", args, 3, 1)
	if len(kvs)%2 != 0 {
		return nil, failure.Type.New("assoc expects even number of arguments after map/vector")
	}

	switch c := v[0].(type) {
	case nil:
		return hmap.New(kvs...), nil
	case *hmap.T:
		for i := 0; i < len(kvs); i += 2 {
			c = c.Assoc(kvs[i], kvs[i+1])
		}

		return c, nil
	case *vec.T:
		for i := 0; i < len(kvs); i += 2 {
			n := index("assoc", kvs[i])

			var ok bool
			if c, ok = c.Assoc(n, kvs[i+1]); !ok {
				return nil, failure.Type.New("index out of bounds: %d", n)
			}
		}

		return c, nil
	}

	return nil, cannot("assoc", v[0])
}

func conj(args []any) (any, error) {
	v, xs := validate.Variadic("conj", args, 1, 1)

	switch c := v[0].(type) {
	case nil:
		l := list.Empty
		for _, x := range xs {
			l = list.Cons(x, l)
		}

		return l, nil
	case *list.T:
		for _, x := range xs {
			c = list.Cons(x, c)
		}

		return c, nil
	case *vec.T:
		for _, x := range xs {
			c = c.Conj(x)
		}

		return c, nil
	case *hmap.T:
		for _, x := range xs {
			e, ok := x.(*vec.T)
			if !ok || e.Count() != 2 {
				return nil, failure.Type.New("conj on a map expects [key value] vectors")
			}

			c = c.Assoc(e.Items()[0], e.Items()[1])
		}

		return c, nil
	}

	return nil, cannot("conj", v[0])
}

func cons(args []any) (any, error) {
	v := validate.Fixed("cons", args, 2, 2)

	return list.Cons(v[0], list.New(items("cons", v[1])...)), nil
}

func count(args []any) (any, error) {
	v := validate.Fixed("count", args, 1, 1)

	switch c := v[0].(type) {
	case nil:
		return int64(0), nil
	case *list.T:
		return int64(c.Count()), nil
	case *vec.T:
		return int64(c.Count()), nil
	case *hmap.T:
		return int64(c.Count()), nil
	case string:
		return int64(len([]rune(c))), nil
	}

	return nil, cannot("count", v[0])
}

func first(args []any) (any, error) {
	v := validate.Fixed("first", args, 1, 1)

	if l, ok := v[0].(*list.T); ok {
		return l.First(), nil
	}

	if xs := items("first", v[0]); len(xs) > 0 {
		return xs[0], nil
	}

	return nil, nil
}

func get(args []any) (any, error) {
	v := validate.Fixed("get", args, 2, 3)

	var dflt any
	if len(v) == 3 {
		dflt = v[2]
	}

	switch c := v[0].(type) {
	case *hmap.T:
		if x, ok := c.Get(v[1]); ok {
			return x, nil
		}
	case *vec.T:
		if n, ok := v[1].(int64); ok {
			if x, ok := c.Nth(int(n)); ok {
				return x, nil
			}
		}
	}

	return dflt, nil
}

func hashMap(args []any) (any, error) {
	if len(args)%2 != 0 {
		return nil, failure.Type.New("no value supplied for key: %v", args[len(args)-1])
	}

	return hmap.New(args...), nil
}

func isEmpty(args []any) (any, error) {
	n, err := count(args)
	if err != nil {
		return nil, err
	}

	return n == int64(0), nil
}

func makeList(args []any) (any, error) {
	return list.New(args...), nil
}

func next(args []any) (any, error) {
	v := validate.Fixed("next", args, 1, 1)

	if l := tail("next", v[0]); l.Count() > 0 {
		return l, nil
	}

	return nil, nil
}

func nth(args []any) (any, error) {
	v := validate.Fixed("nth", args, 2, 3)

	n := index("nth", v[1])

	xs := items("nth", v[0])
	if n >= 0 && n < len(xs) {
		return xs[n], nil
	}

	if len(v) == 3 {
		return v[2], nil
	}

	return nil, failure.Type.New("index out of bounds: %d", n)
}

func rest(args []any) (any, error) {
	v := validate.Fixed("rest", args, 1, 1)

	return tail("rest", v[0]), nil
}

func seq(args []any) (any, error) {
	v := validate.Fixed("seq", args, 1, 1)

	xs := items("seq", v[0])
	if len(xs) == 0 {
		return nil, nil
	}

	if l, ok := v[0].(*list.T); ok {
		return l, nil
	}

	return list.New(xs...), nil
}

func vector(args []any) (any, error) {
	return vec.New(args...), nil
}

func cannot(name string, v any) error {
	return failure.Type.New("%s not supported on %s", name, common.TypeName(v))
}

func index(name string, v any) int {
	n, ok := v.(int64)
	if !ok {
		panic(failure.Type.New("%s expects an integer index, got %s", name, common.TypeName(v)))
	}

	return int(n)
}

// items returns the elements of a sequential value. Map entries are
// [key value] vectors and strings are sequences of one-character strings.
func items(name string, v any) []any {
	switch c := v.(type) {
	case nil:
		return nil
	case *list.T:
		return c.Items()
	case *vec.T:
		return c.Items()
	case *hmap.T:
		xs := make([]any, 0, c.Count())
		c.Each(func(k, v any) {
			xs = append(xs, vec.New(k, v))
		})

		return xs
	case string:
		xs := []any{}
		for _, r := range c {
			xs = append(xs, string(r))
		}

		return xs
	}

	panic(failure.Type.New("don't know how to create a sequence from %s for %s", common.TypeName(v), name))
}

func tail(name string, v any) *list.T {
	if l, ok := v.(*list.T); ok {
		return l.Rest()
	}

	xs := items(name, v)
	if len(xs) < 2 {
		return list.Empty
	}

	return list.New(xs[1:]...)
}
