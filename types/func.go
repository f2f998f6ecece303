package types

import (
	"strings"

	"skiff/ast"
)

// NativeFunc is a host-provided function. It receives the live
// evaluator so it may re-enter execution, and the ordered argument
// values.
type NativeFunc func(interp Interp, args []Value) (Value, error)

// Func is a callable value: either a native function or a
// user-defined one (parameter list plus body). Exactly one of Native
// and Body is set; the evaluator dispatches on which. Func values are
// immutable and shared; equality is handle identity, never structure.
type Func struct {
	Name   string
	Params []string
	Body   *ast.Block
	Native NativeFunc
}

// NewNative wraps a host function as a value
func NewNative(name string, fn NativeFunc) *Func {
	return &Func{Name: name, Native: fn}
}

// NewUserFunc creates a user-defined function value
func NewUserFunc(name string, params []string, body *ast.Block) *Func {
	return &Func{Name: name, Params: params, Body: body}
}

// IsNative reports whether this is a host-provided function
func (f *Func) IsNative() bool {
	return f.Native != nil
}

// Kind returns the value kind
func (f *Func) Kind() Kind {
	return KindFunc
}

func (f *Func) String() string {
	if f.IsNative() {
		return "< native function >"
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return "< func " + name + "(" + strings.Join(f.Params, ", ") + ") >"
}

// Display is the same as String for functions
func (f *Func) Display() string {
	return f.String()
}

// Equal is identity: two function values are equal only if they are
// the same handle
func (f *Func) Equal(other Value) bool {
	o, ok := other.(*Func)
	return ok && f == o
}

// Truthy is true for every function
func (f *Func) Truthy() bool {
	return true
}
