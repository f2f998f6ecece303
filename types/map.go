package types

import (
	"fmt"
	"strings"
)

// Map is a shared mutable mapping from values to values. Insertion
// order is irrelevant. Like Str and Array it is a handle: assignment
// aliases the underlying storage.
//
// Entries are stored under a derived hash key so that numbers hash by
// their decimal rendering (the language's documented quirk), strings
// by contents, and the remaining compound kinds by handle identity.
type Map struct {
	entries map[string]mapEntry
}

type mapEntry struct {
	key Value
	val Value
}

// NewMap creates a fresh empty map handle
func NewMap() *Map {
	return &Map{entries: make(map[string]mapEntry)}
}

// hashKey derives the storage key for a map key value
func hashKey(v Value) string {
	switch k := v.(type) {
	case Number:
		return "n:" + k.String()
	case *Str:
		return "s:" + k.Val
	case Bool:
		return "b:" + k.String()
	case NilValue:
		return "nil"
	default:
		// arrays, maps and functions key by handle identity
		return fmt.Sprintf("%s:%p", v.Kind(), v)
	}
}

// Get looks up a key, reporting whether it was present
func (m *Map) Get(key Value) (Value, bool) {
	e, ok := m.entries[hashKey(key)]
	if !ok {
		return Nil, false
	}
	return e.val, true
}

// Set inserts or replaces the entry for a key
func (m *Map) Set(key, val Value) {
	m.entries[hashKey(key)] = mapEntry{key: key, val: val}
}

// Len returns the number of entries
func (m *Map) Len() int {
	return len(m.entries)
}

// Kind returns the value kind
func (m *Map) Kind() Kind {
	return KindMap
}

// String renders the map as %{ k => v, ... }
func (m *Map) String() string {
	if len(m.entries) == 0 {
		return "%{}"
	}
	var b strings.Builder
	b.WriteString("%{\n")
	for _, e := range m.entries {
		fmt.Fprintf(&b, "    %s => %s,\n", e.key.Display(), e.val.Display())
	}
	b.WriteString("}")
	return b.String()
}

// Display is the same as String for maps
func (m *Map) Display() string {
	return m.String()
}

// Equal falls back to kind equality: any two maps compare equal.
// Inherited from the reference semantics and kept deliberately.
func (m *Map) Equal(other Value) bool {
	_, ok := other.(*Map)
	return ok
}

// Truthy is true for every map, including an empty one
func (m *Map) Truthy() bool {
	return true
}
