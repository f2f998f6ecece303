package eval

import "skiff/types"

// binding is one name-to-value entry on the stack
type binding struct {
	name string
	val  types.Value
}

// LocalStack holds variable bindings as a flat vector with marker
// offsets delimiting nested scopes. It is exclusively owned by one
// Evaluator for the duration of a program run.
type LocalStack struct {
	markers []int
	locals  []binding
}

// NewLocalStack creates an empty stack
func NewLocalStack() *LocalStack {
	return &LocalStack{}
}

// Push opens a new scope by recording the current binding count
func (s *LocalStack) Push() {
	s.markers = append(s.markers, len(s.locals))
}

// Pop closes the most recent scope, discarding its bindings. Calling
// Pop without a matching Push is a programming error, not a
// recoverable runtime condition.
func (s *LocalStack) Pop() {
	if len(s.markers) == 0 {
		panic("eval: popped nonexistent scope")
	}
	mark := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	s.locals = s.locals[:mark]
}

// Get scans bindings from most recently added backward and returns the
// first match. Unbound names silently evaluate to nil; this leniency
// is part of the language, not an oversight.
func (s *LocalStack) Get(name string) types.Value {
	for i := len(s.locals) - 1; i >= 0; i-- {
		if s.locals[i].name == name {
			return s.locals[i].val
		}
	}
	return types.Nil
}

// Exists reports whether a name is bound anywhere on the stack
func (s *LocalStack) Exists(name string) bool {
	for i := len(s.locals) - 1; i >= 0; i-- {
		if s.locals[i].name == name {
			return true
		}
	}
	return false
}

// Set rebinds the nearest visible binding with this name if one
// exists, so assignment mutates enclosing-scope variables rather than
// shadowing them. Otherwise it creates a new binding in the current
// scope.
func (s *LocalStack) Set(name string, val types.Value) {
	for i := len(s.locals) - 1; i >= 0; i-- {
		if s.locals[i].name == name {
			s.locals[i].val = val
			return
		}
	}
	s.locals = append(s.locals, binding{name: name, val: val})
}

// Bind always creates a fresh binding in the current scope, shadowing
// any enclosing binding with the same name. Used for function
// parameters.
func (s *LocalStack) Bind(name string, val types.Value) {
	s.locals = append(s.locals, binding{name: name, val: val})
}

// Depth returns the number of open scopes
func (s *LocalStack) Depth() int {
	return len(s.markers)
}
