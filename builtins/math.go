package builtins

import (
	"math"

	"skiff/types"
)

// mathModule builds the `math` module map: one-argument numeric
// functions plus the usual constants. Being an ordinary map, programs
// can pass it around or even replace entries.
func mathModule() *types.Map {
	m := types.NewMap()

	moduleFunc(m, "math", "sin", numFunc(math.Sin))
	moduleFunc(m, "math", "cos", numFunc(math.Cos))
	moduleFunc(m, "math", "tan", numFunc(math.Tan))
	moduleFunc(m, "math", "sinh", numFunc(math.Sinh))
	moduleFunc(m, "math", "cosh", numFunc(math.Cosh))
	moduleFunc(m, "math", "tanh", numFunc(math.Tanh))
	moduleFunc(m, "math", "floor", numFunc(math.Floor))
	moduleFunc(m, "math", "ceil", numFunc(math.Ceil))
	moduleFunc(m, "math", "ln", numFunc(math.Log))
	moduleFunc(m, "math", "sqrt", numFunc(math.Sqrt))
	moduleFunc(m, "math", "abs", numFunc(math.Abs))
	moduleFunc(m, "math", "signum", numFunc(signum))

	m.Set(types.NewStr("pi"), types.NewNumber(math.Pi))
	m.Set(types.NewStr("e"), types.NewNumber(math.E))

	return m
}

// numFunc adapts a float64 function into a one-argument native
func numFunc(fn func(float64) float64) types.NativeFunc {
	return func(interp types.Interp, args []types.Value) (types.Value, error) {
		if len(args) != 1 {
			return nil, types.NewError(types.ErrBadArgCount)
		}
		x, err := types.AsNumber(args[0])
		if err != nil {
			return nil, err
		}
		return types.NewNumber(fn(x)), nil
	}
}

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
