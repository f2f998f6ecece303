package types

import "strconv"

// Value is the interface all skiff runtime values implement.
// Number, Bool and Nil are plain value types; Str, Array, Map and Func
// are pointers so that two bindings to the same compound value observe
// each other's mutations (reference semantics, not copy semantics).
type Value interface {
	Kind() Kind
	String() string  // literal/debug representation
	Display() string // representation used by print (strings unquoted)
	Equal(Value) bool
	Truthy() bool
}

// Interp is the evaluator surface handed to native functions.
// Natives may re-enter execution through it; run() does.
type Interp interface {
	// EvalFile parses and executes a source file against the live
	// evaluator in a nested scope, returning its final value.
	EvalFile(path string) (Value, error)
}

// Number is an IEEE-754 double
type Number float64

// NewNumber creates a number value
func NewNumber(f float64) Number {
	return Number(f)
}

// Kind returns the value kind
func (n Number) Kind() Kind {
	return KindNumber
}

// String renders the number the shortest way that round-trips
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Display is the same as String for numbers
func (n Number) Display() string {
	return n.String()
}

// Equal compares by decimal string rendering, not by float value.
// A documented quirk of the language, kept so map hashing and
// equality agree with each other.
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	return n.String() == o.String()
}

// Truthy returns true for every number, including 0
func (n Number) Truthy() bool {
	return true
}

// Bool is a boolean value
type Bool bool

// NewBool creates a bool value
func NewBool(b bool) Bool {
	return Bool(b)
}

// Kind returns the value kind
func (b Bool) Kind() Kind {
	return KindBool
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Display is the same as String for bools
func (b Bool) Display() string {
	return b.String()
}

// Equal compares boolean values
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// Truthy returns the boolean itself
func (b Bool) Truthy() bool {
	return bool(b)
}

// NilValue is the nil variant
type NilValue struct{}

// Nil is the canonical nil value
var Nil = NilValue{}

// Kind returns the value kind
func (NilValue) Kind() Kind {
	return KindNil
}

func (NilValue) String() string {
	return "nil"
}

// Display is the same as String for nil
func (NilValue) Display() string {
	return "nil"
}

// Equal is true for any other nil
func (NilValue) Equal(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

// Truthy is false; nil and false are the only falsy values
func (NilValue) Truthy() bool {
	return false
}
