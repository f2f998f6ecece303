package builtins

import (
	"math"
	"testing"

	"skiff/types"
)

// scopeMap is a minimal Scope for Install tests
type scopeMap map[string]types.Value

func (s scopeMap) Define(name string, v types.Value) { s[name] = v }

func TestInstallBindsCoreAndModules(t *testing.T) {
	s := scopeMap{}
	Install(s)

	for _, name := range []string{"print", "input", "type", "exit", "sleep", "run"} {
		fn, ok := s[name].(*types.Func)
		if !ok {
			t.Errorf("%s not bound to a function", name)
			continue
		}
		if !fn.IsNative() {
			t.Errorf("%s is not native", name)
		}
	}
	for _, name := range []string{"math", "crypto"} {
		if _, ok := s[name].(*types.Map); !ok {
			t.Errorf("%s not bound to a module map", name)
		}
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("print"); !ok {
		t.Error("print not registered")
	}
	if _, ok := r.Get("no_such_builtin"); ok {
		t.Error("unexpected builtin found")
	}
}

func TestBuiltinType(t *testing.T) {
	tests := []struct {
		arg  types.Value
		want string
	}{
		{types.NewNumber(1), "number"},
		{types.NewStr("x"), "string"},
		{types.NewBool(true), "bool"},
		{types.NewMap(), "map"},
		{types.Nil, "nil"},
	}
	for _, tt := range tests {
		got, err := builtinType(nil, []types.Value{tt.arg})
		if err != nil {
			t.Fatalf("type(%v): %v", tt.arg, err)
		}
		if !got.Equal(types.NewStr(tt.want)) {
			t.Errorf("type(%v) = %v, want %s", tt.arg, got, tt.want)
		}
	}

	if _, err := builtinType(nil, nil); types.CodeOf(err) != types.ErrBadArgCount {
		t.Errorf("type() error = %v, want IncorrectNumberOfArgs", err)
	}
}

func TestMathModule(t *testing.T) {
	m := mathModule()

	call := func(name string, arg float64) float64 {
		t.Helper()
		fnVal, ok := m.Get(types.NewStr(name))
		if !ok {
			t.Fatalf("math.%s not bound", name)
		}
		fn, err := types.AsFunc(fnVal)
		if err != nil {
			t.Fatalf("math.%s: %v", name, err)
		}
		out, err := fn.Native(nil, []types.Value{types.NewNumber(arg)})
		if err != nil {
			t.Fatalf("math.%s(%v): %v", name, arg, err)
		}
		f, err := types.AsNumber(out)
		if err != nil {
			t.Fatalf("math.%s(%v) returned %v", name, arg, out)
		}
		return f
	}

	if got := call("floor", 3.7); got != 3 {
		t.Errorf("floor(3.7) = %v, want 3", got)
	}
	if got := call("ceil", 3.2); got != 4 {
		t.Errorf("ceil(3.2) = %v, want 4", got)
	}
	if got := call("signum", -42); got != -1 {
		t.Errorf("signum(-42) = %v, want -1", got)
	}
	if got := call("signum", 0); got != 0 {
		t.Errorf("signum(0) = %v, want 0", got)
	}
	if got := call("sin", 0); got != 0 {
		t.Errorf("sin(0) = %v, want 0", got)
	}
	if got := call("ln", math.E); math.Abs(got-1) > 1e-12 {
		t.Errorf("ln(e) = %v, want 1", got)
	}

	pi, ok := m.Get(types.NewStr("pi"))
	if !ok || !pi.Equal(types.NewNumber(math.Pi)) {
		t.Errorf("math.pi = %v, want pi", pi)
	}
}

func TestMathModuleErrors(t *testing.T) {
	m := mathModule()
	fnVal, _ := m.Get(types.NewStr("sin"))
	fn, err := types.AsFunc(fnVal)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := fn.Native(nil, []types.Value{types.NewStr("x")}); types.CodeOf(err) != types.ErrNotANumber {
		t.Errorf("sin(string) error = %v, want NotANumber", err)
	}
	if _, err := fn.Native(nil, nil); types.CodeOf(err) != types.ErrBadArgCount {
		t.Errorf("sin() error = %v, want IncorrectNumberOfArgs", err)
	}
}
