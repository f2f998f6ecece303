package eval

import (
	"math"

	"skiff/ast"
	"skiff/types"
)

// evalUnary handles prefix operators
func (e *Evaluator) evalUnary(n *ast.Unary) (types.Value, error) {
	v, err := e.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNot:
		return types.NewBool(!v.Truthy()), nil
	case ast.OpNeg:
		f, err := types.AsNumber(v)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(-f), nil
	default:
		return nil, types.NewError(types.ErrNotANumber)
	}
}

// evalBinary evaluates both operands, then applies the operator. Both
// sides always evaluate, including for && and ||: the logical
// operators combine truthiness without short-circuiting.
func (e *Evaluator) evalBinary(n *ast.Binary) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpAdd:
		return evalAdd(left, right)
	case ast.OpSub:
		return types.NumOp(left, right, func(x, y float64) float64 { return x - y })
	case ast.OpMul:
		return types.NumOp(left, right, func(x, y float64) float64 { return x * y })
	case ast.OpDiv:
		return types.NumOp(left, right, func(x, y float64) float64 { return x / y })
	case ast.OpPow:
		return types.NumOp(left, right, math.Pow)
	case ast.OpMod:
		return types.NumOp(left, right, math.Mod)
	case ast.OpEq:
		return types.NewBool(left.Equal(right)), nil
	case ast.OpGt:
		return evalCompare(left, right, func(x, y float64) bool { return x > y })
	case ast.OpGtEq:
		return evalCompare(left, right, func(x, y float64) bool { return x >= y })
	case ast.OpLt:
		return evalCompare(left, right, func(x, y float64) bool { return x < y })
	case ast.OpLtEq:
		return evalCompare(left, right, func(x, y float64) bool { return x <= y })
	case ast.OpAnd:
		return types.NewBool(left.Truthy() && right.Truthy()), nil
	case ast.OpOr:
		return types.NewBool(left.Truthy() || right.Truthy()), nil
	case ast.OpAccess:
		return evalAccess(left, right)
	default:
		return nil, types.NewError(types.ErrCannotAdd)
	}
}

// evalAdd is the one overloaded operator: numeric addition, string
// concatenation, or array concatenation. The result is always a fresh
// value; concatenation never mutates an operand.
func evalAdd(left, right types.Value) (types.Value, error) {
	switch l := left.(type) {
	case types.Number:
		r, ok := right.(types.Number)
		if !ok {
			return nil, types.NewError(types.ErrCannotAdd)
		}
		return l + r, nil
	case *types.Str:
		r, ok := right.(*types.Str)
		if !ok {
			return nil, types.NewError(types.ErrCannotAdd)
		}
		return types.NewStr(l.Val + r.Val), nil
	case *types.Array:
		r, ok := right.(*types.Array)
		if !ok {
			return nil, types.NewError(types.ErrCannotAdd)
		}
		return l.Concat(r), nil
	default:
		return nil, types.NewError(types.ErrCannotAdd)
	}
}

// evalCompare applies a numeric ordering; ordering is defined only for
// numbers
func evalCompare(left, right types.Value, cmp func(x, y float64) bool) (types.Value, error) {
	x, err := types.AsNumber(left)
	if err != nil {
		return nil, err
	}
	y, err := types.AsNumber(right)
	if err != nil {
		return nil, err
	}
	return types.NewBool(cmp(x, y)), nil
}

// evalAccess reads a member from a map, yielding nil for a missing key
func evalAccess(left, right types.Value) (types.Value, error) {
	m, err := types.AsMap(left)
	if err != nil {
		return nil, err
	}
	v, _ := m.Get(right)
	return v, nil
}
