package types

// ErrCode identifies a runtime error. Runtime errors are returned, not
// thrown: they propagate up through every recursive evaluation call
// until the top-level caller reports them.
type ErrCode int

const (
	ErrNone ErrCode = iota
	ErrCannotAdd
	ErrNotANumber
	ErrNotAString
	ErrNotAFunction
	ErrNotAMap
	ErrBadArgCount
)

// String returns the code name
func (c ErrCode) String() string {
	switch c {
	case ErrNone:
		return "None"
	case ErrCannotAdd:
		return "CannotAdd"
	case ErrNotANumber:
		return "NotANumber"
	case ErrNotAString:
		return "NotAString"
	case ErrNotAFunction:
		return "NotAFunction"
	case ErrNotAMap:
		return "NotAMap"
	case ErrBadArgCount:
		return "IncorrectNumberOfArgs"
	default:
		return "Unknown"
	}
}

// Message returns a human-readable description
func (c ErrCode) Message() string {
	switch c {
	case ErrCannotAdd:
		return "cannot add these operand types"
	case ErrNotANumber:
		return "expected a number"
	case ErrNotAString:
		return "expected a string"
	case ErrNotAFunction:
		return "expected a function"
	case ErrNotAMap:
		return "expected a map"
	case ErrBadArgCount:
		return "incorrect number of arguments"
	default:
		return "unknown error"
	}
}

// Error is a runtime error value
type Error struct {
	Code ErrCode
}

// NewError creates a runtime error for a code
func NewError(code ErrCode) *Error {
	return &Error{Code: code}
}

func (e *Error) Error() string {
	return e.Code.String() + ": " + e.Code.Message()
}

// CodeOf extracts the error code from a runtime error, or ErrNone
func CodeOf(err error) ErrCode {
	if re, ok := err.(*Error); ok {
		return re.Code
	}
	return ErrNone
}

// AsNumber narrows a value to its float payload
func AsNumber(v Value) (float64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, NewError(ErrNotANumber)
	}
	return float64(n), nil
}

// AsStr narrows a value to its string handle
func AsStr(v Value) (*Str, error) {
	s, ok := v.(*Str)
	if !ok {
		return nil, NewError(ErrNotAString)
	}
	return s, nil
}

// AsFunc narrows a value to its callable handle
func AsFunc(v Value) (*Func, error) {
	f, ok := v.(*Func)
	if !ok {
		return nil, NewError(ErrNotAFunction)
	}
	return f, nil
}

// AsMap narrows a value to its map handle
func AsMap(v Value) (*Map, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, NewError(ErrNotAMap)
	}
	return m, nil
}

// NumOp narrows both operands to numbers, applies fn and re-wraps the
// result. Centralizes the both-operands-must-be-numeric failure shared
// by subtraction, multiplication, division, power and modulo.
func NumOp(a, b Value, fn func(x, y float64) float64) (Value, error) {
	x, err := AsNumber(a)
	if err != nil {
		return nil, err
	}
	y, err := AsNumber(b)
	if err != nil {
		return nil, err
	}
	return NewNumber(fn(x, y)), nil
}
