package types

// Kind discriminates the runtime value variants
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindArray
	KindMap
	KindFunc
	KindNil
)

// String returns the name the language exposes through type()
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindFunc:
		return "func"
	case KindNil:
		return "nil"
	default:
		return "unknown"
	}
}
