package types

import "strings"

// Array is a shared mutable ordered sequence of values. Assignment of
// an array value aliases it; it never clones.
type Array struct {
	Elems []Value
}

// NewArray creates a fresh array handle around the given elements
func NewArray(elems []Value) *Array {
	return &Array{Elems: elems}
}

// Kind returns the value kind
func (a *Array) Kind() Kind {
	return KindArray
}

// String renders the array as [a, b, c]
func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Display())
	}
	b.WriteByte(']')
	return b.String()
}

// Display is the same as String for arrays
func (a *Array) Display() string {
	return a.String()
}

// Equal compares element by element, recursing into contained values
func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok {
		return false
	}
	if len(a.Elems) != len(o.Elems) {
		return false
	}
	for i := range a.Elems {
		if !a.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Truthy is true for every array, including []
func (a *Array) Truthy() bool {
	return true
}

// Concat returns a new array holding a's elements then b's.
// The result shares no storage with either operand.
func (a *Array) Concat(b *Array) *Array {
	elems := make([]Value, 0, len(a.Elems)+len(b.Elems))
	elems = append(elems, a.Elems...)
	elems = append(elems, b.Elems...)
	return &Array{Elems: elems}
}
