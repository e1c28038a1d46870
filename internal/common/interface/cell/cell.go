// Released under an MIT license. See LICENSE.

// Package cell defines the interface implemented by sprig's own value types.
//
// Host values (Go strings, int64, bool, arbitrary structs) are values too; they
// just do not carry a type name or an equality method of their own.
package cell

// I (cell) is the interface for sprig-defined values.
type I interface {
	Equal(v any) bool
	Name() string
}
