// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/validate"
)

func add(args []any) (any, error) {
	return fold("+", int64(0), args, goarith.Number.Add), nil
}

func mul(args []any) (any, error) {
	return fold("*", int64(1), args, goarith.Number.Mul), nil
}

func sub(args []any) (any, error) {
	v, rest := validate.Variadic("-", args, 1, 1)

	if len(rest) == 0 {
		return fold("-", int64(0), v, goarith.Number.Sub), nil
	}

	return fold("-", v[0], rest, goarith.Number.Sub), nil
}

func quot(args []any) (any, error) {
	v := validate.Fixed("quot", args, 2, 2)

	if n, d := integers("quot", v[0], v[1]); n != nil {
		if d == 0 {
			return nil, failure.Type.New("divide by zero")
		}

		return *n / d, nil
	}

	x, y := floats("quot", v[0], v[1])

	return math.Trunc(x / y), nil
}

func rem(args []any) (any, error) {
	v := validate.Fixed("rem", args, 2, 2)

	if n, d := integers("rem", v[0], v[1]); n != nil {
		if d == 0 {
			return nil, failure.Type.New("divide by zero")
		}

		return *n % d, nil
	}

	x, y := floats("rem", v[0], v[1])

	return math.Mod(x, y), nil
}

func floats(name string, a, b any) (float64, float64) {
	return float(name, a), float(name, b)
}

func float(name string, v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}

	panic(notNumber(name, v))
}

// fold combines acc with each of args using op.
func fold(name string, acc any, args []any, op func(goarith.Number, goarith.Number) goarith.Number) any {
	isFloat := false
	result := number(name, acc)

	if _, ok := acc.(float64); ok {
		isFloat = true
	}

	for _, a := range args {
		if _, ok := a.(float64); ok {
			isFloat = true
		}

		result = op(result, number(name, a))
	}

	return normalize(isFloat, result)
}

// integers returns a pointer to a and the value of b if both are int64.
func integers(name string, a, b any) (*int64, int64) {
	number(name, a)
	number(name, b)

	x, ok := a.(int64)
	if !ok {
		return nil, 0
	}

	y, ok := b.(int64)
	if !ok {
		return nil, 0
	}

	return &x, y
}

// normalize converts a goarith result back to int64, *big.Int, or float64.
func normalize(isFloat bool, n goarith.Number) any {
	s := fmt.Sprint(n)

	if !isFloat {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}

		if b, ok := new(big.Int).SetString(s, 10); ok {
			return b
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(failure.Type.New("unexpected arithmetic result: %s", s))
	}

	return f
}

func notNumber(name string, v any) error {
	return failure.Type.New("%s expects numbers, got %s", name, common.TypeName(v))
}

func number(name string, v any) goarith.Number {
	if !common.IsNumber(v) {
		panic(notNumber(name, v))
	}

	return common.AsNumber(v)
}
