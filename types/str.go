package types

import "strconv"

// Str is a shared mutable string. All bindings to one Str alias the
// same storage; mutation through one binding is visible through the
// others.
type Str struct {
	Val string
}

// NewStr creates a fresh string handle
func NewStr(s string) *Str {
	return &Str{Val: s}
}

// Kind returns the value kind
func (s *Str) Kind() Kind {
	return KindString
}

// String returns the quoted literal form
func (s *Str) String() string {
	return strconv.Quote(s.Val)
}

// Display returns the raw contents; print shows strings unquoted
func (s *Str) Display() string {
	return s.Val
}

// Equal compares string contents, not handles
func (s *Str) Equal(other Value) bool {
	o, ok := other.(*Str)
	return ok && s.Val == o.Val
}

// Truthy is true for every string, including ""
func (s *Str) Truthy() bool {
	return true
}
