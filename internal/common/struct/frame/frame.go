// Released under an MIT license. See LICENSE.

// Package frame provides sprig's activation record type.
package frame

// T (frame) is the activation record of one function call. The analyzer
// decides how many slots a call needs and which slot each local uses.
type T struct {
	captures []any
	slots    []any
}

type frame = T

// New creates a frame with size slots that reads captured values from
// captures.
func New(size int, captures []any) *frame {
	return &frame{captures: captures, slots: make([]any, size)}
}

// Capture returns the captured value at index i.
func (f *frame) Capture(i int) any {
	return f.captures[i]
}

// Get returns the value in slot i.
func (f *frame) Get(i int) any {
	return f.slots[i]
}

// Set stores v in slot i.
func (f *frame) Set(i int, v any) {
	f.slots[i] = v
}

// Size returns the number of slots in the frame f.
func (f *frame) Size() int {
	return len(f.slots)
}
