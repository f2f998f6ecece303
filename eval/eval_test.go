package eval

import (
	"os"
	"path/filepath"
	"testing"

	"skiff/types"
)

// run evaluates source on a fresh evaluator, failing the test on any
// parse or runtime error
func run(t *testing.T, source string) types.Value {
	t.Helper()
	v, err := New().Run(source)
	if err != nil {
		t.Fatalf("Run(%q) error: %v", source, err)
	}
	return v
}

// runErr evaluates source expecting a runtime error
func runErr(t *testing.T, source string) error {
	t.Helper()
	_, err := New().Run(source)
	if err == nil {
		t.Fatalf("Run(%q) succeeded, want error", source)
	}
	return err
}

func TestEvalLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  types.Value
	}{
		{"42", types.NewNumber(42)},
		{"3.5", types.NewNumber(3.5)},
		{`"hi"`, types.NewStr("hi")},
		{"true", types.NewBool(true)},
		{"false", types.NewBool(false)},
		{"nil", types.Nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := run(t, tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 + 2 * 3", 7},
		{"10 - 2 - 3", 5},
		{"7 / 2", 3.5},
		{"2 ** 10", 1024},
		{"7 % 3", 1},
		{"-3 + 5", 2},
		{"2 ** 2 * 3", 12},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := run(t, tt.input)
			if !got.Equal(types.NewNumber(tt.want)) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalAddOverloads(t *testing.T) {
	if got := run(t, `"foo" + "bar"`); !got.Equal(types.NewStr("foobar")) {
		t.Errorf("string concat = %v, want foobar", got)
	}
	err := runErr(t, `"foo" + 1`)
	if types.CodeOf(err) != types.ErrCannotAdd {
		t.Errorf("error = %v, want CannotAdd", err)
	}
	err = runErr(t, `1 + true`)
	if types.CodeOf(err) != types.ErrCannotAdd {
		t.Errorf("error = %v, want CannotAdd", err)
	}
}

func TestEvalNumberEqualityByRendering(t *testing.T) {
	// equality on numbers goes through their decimal rendering
	if got := run(t, "1 == 1.0"); !got.Equal(types.NewBool(true)) {
		t.Errorf("1 == 1.0 = %v, want true", got)
	}
	if got := run(t, "0.1 + 0.2 == 0.3"); !got.Equal(types.NewBool(false)) {
		t.Errorf("0.1 + 0.2 == 0.3 = %v, want false", got)
	}
}

func TestEvalComparisonsNumericOnly(t *testing.T) {
	if got := run(t, "2 < 3"); !got.Equal(types.NewBool(true)) {
		t.Errorf("2 < 3 = %v, want true", got)
	}
	err := runErr(t, `"a" < "b"`)
	if types.CodeOf(err) != types.ErrNotANumber {
		t.Errorf("error = %v, want NotANumber", err)
	}
}

func TestEvalNotEqual(t *testing.T) {
	if got := run(t, "1 != 2"); !got.Equal(types.NewBool(true)) {
		t.Errorf("1 != 2 = %v, want true", got)
	}
	if got := run(t, "1 != 1"); !got.Equal(types.NewBool(false)) {
		t.Errorf("1 != 1 = %v, want false", got)
	}
}

func TestEvalTruthiness(t *testing.T) {
	// only nil and false are falsy; zero and the empty string are not
	tests := []struct {
		input string
		want  float64
	}{
		{"if 0 { 1 } else { 2 }", 1},
		{`if "" { 1 } else { 2 }`, 1},
		{"if nil { 1 } else { 2 }", 2},
		{"if false { 1 } else { 2 }", 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := run(t, tt.input)
			if !got.Equal(types.NewNumber(tt.want)) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	got := run(t, `
		n = 0
		bump = func() { n += 1; true }
		false && bump()
		true || bump()
		n
	`)
	if !got.Equal(types.NewNumber(2)) {
		t.Errorf("side effect count = %v, want 2", got)
	}
}

func TestEvalUnboundIdentIsNil(t *testing.T) {
	if got := run(t, "never_bound"); !got.Equal(types.Nil) {
		t.Errorf("got %v, want nil", got)
	}
}

func TestEvalAssignmentYieldsNil(t *testing.T) {
	if got := run(t, "x = 1"); !got.Equal(types.Nil) {
		t.Errorf("assignment = %v, want nil", got)
	}
	// chained assignment binds the left name to the inner nil
	got := run(t, "x = y = 2; x")
	if !got.Equal(types.Nil) {
		t.Errorf("x = %v, want nil", got)
	}
	if got := run(t, "x = y = 2; y"); !got.Equal(types.NewNumber(2)) {
		t.Errorf("y = %v, want 2", got)
	}
}

func TestEvalCompoundAssignment(t *testing.T) {
	got := run(t, "x = 10; x += 5; x -= 3; x *= 2; x")
	if !got.Equal(types.NewNumber(24)) {
		t.Errorf("x = %v, want 24", got)
	}
}

func TestEvalBlockValueAndScope(t *testing.T) {
	if got := run(t, "{ 1; 2; 3 }"); !got.Equal(types.NewNumber(3)) {
		t.Errorf("block value = %v, want 3", got)
	}
	// bindings created in a block do not escape it
	if got := run(t, "{ y = 2 }; y"); !got.Equal(types.Nil) {
		t.Errorf("y = %v, want nil", got)
	}
	// assignment in a block rebinds an enclosing name
	if got := run(t, "x = 1; { x = 2 }; x"); !got.Equal(types.NewNumber(2)) {
		t.Errorf("x = %v, want 2", got)
	}
}

func TestEvalIfYieldsBranchValue(t *testing.T) {
	if got := run(t, "if true { 1 } else { 2 }"); !got.Equal(types.NewNumber(1)) {
		t.Errorf("got %v, want 1", got)
	}
	if got := run(t, "if false { 1 }"); !got.Equal(types.Nil) {
		t.Errorf("untaken if = %v, want nil", got)
	}
}

func TestEvalLoopBreak(t *testing.T) {
	got := run(t, `
		n = 3
		loop {
			n -= 1
			if n == 0 { break }
		}
		n
	`)
	if !got.Equal(types.NewNumber(0)) {
		t.Errorf("n = %v, want 0", got)
	}
}

func TestEvalLoopConditionSkipsBodyOnly(t *testing.T) {
	// a false condition skips the body for that pass; the loop itself
	// keeps running until a break
	got := run(t, `
		n = 0
		tick = func() { n += 1; n > 2 }
		loop tick() { break }
		n
	`)
	if !got.Equal(types.NewNumber(3)) {
		t.Errorf("n = %v, want 3", got)
	}
}

func TestEvalLabeledBreakTerminatesIntermediateLoops(t *testing.T) {
	got := run(t, `
		n = 0
		loop @outer {
			loop {
				break outer
			}
			n = 99
		}
		n
	`)
	if !got.Equal(types.NewNumber(0)) {
		t.Errorf("n = %v, want 0: intermediate loop body resumed after break", got)
	}
}

func TestEvalUnlabeledBreakStopsNearestLoop(t *testing.T) {
	got := run(t, `
		n = 0
		loop @outer {
			n += 1
			if n == 2 { break }
			loop { break }
		}
		n
	`)
	if !got.Equal(types.NewNumber(2)) {
		t.Errorf("n = %v, want 2", got)
	}
}

func TestEvalLoopYieldsNil(t *testing.T) {
	if got := run(t, "x = loop { break }; x"); !got.Equal(types.Nil) {
		t.Errorf("loop value = %v, want nil", got)
	}
}

func TestEvalFunctionCall(t *testing.T) {
	got := run(t, "func add(a, b) { a + b }; add(2, 3)")
	if !got.Equal(types.NewNumber(5)) {
		t.Errorf("add(2, 3) = %v, want 5", got)
	}
}

func TestEvalNamedFuncYieldsValue(t *testing.T) {
	got := run(t, "h = func g() { 41 }; h()")
	if !got.Equal(types.NewNumber(41)) {
		t.Errorf("h() = %v, want 41", got)
	}
	// the declaration also bound the name itself
	if got := run(t, "h = func g() { 41 }; g()"); !got.Equal(types.NewNumber(41)) {
		t.Errorf("g() = %v, want 41", got)
	}
}

func TestEvalRecursion(t *testing.T) {
	got := run(t, `
		func fib(n) {
			if n < 2 { n } else { fib(n - 1) + fib(n - 2) }
		}
		fib(10)
	`)
	if !got.Equal(types.NewNumber(55)) {
		t.Errorf("fib(10) = %v, want 55", got)
	}
}

func TestEvalParametersShadowAndUnwind(t *testing.T) {
	got := run(t, "x = 5; f = func(x) { x }; f(1)")
	if !got.Equal(types.NewNumber(1)) {
		t.Errorf("f(1) = %v, want 1", got)
	}
	if got := run(t, "x = 5; f = func(x) { x }; f(1); x"); !got.Equal(types.NewNumber(5)) {
		t.Errorf("x after call = %v, want 5", got)
	}
}

func TestEvalFunctionSeesCallerBindings(t *testing.T) {
	// bindings resolve against the live stack at call time
	got := run(t, "x = 5; f = func() { x }; x = 6; f()")
	if !got.Equal(types.NewNumber(6)) {
		t.Errorf("f() = %v, want 6", got)
	}
}

func TestEvalFunctionAssignsCallerBinding(t *testing.T) {
	got := run(t, "n = 0; f = func() { n = 7 }; f(); n")
	if !got.Equal(types.NewNumber(7)) {
		t.Errorf("n = %v, want 7", got)
	}
}

func TestEvalArityMismatch(t *testing.T) {
	err := runErr(t, "f = func(a) { a }; f(1, 2)")
	if types.CodeOf(err) != types.ErrBadArgCount {
		t.Errorf("error = %v, want IncorrectNumberOfArgs", err)
	}
}

func TestEvalCallingNonFunction(t *testing.T) {
	err := runErr(t, "x = 1; x()")
	if types.CodeOf(err) != types.ErrNotAFunction {
		t.Errorf("error = %v, want NotAFunction", err)
	}
}

func TestEvalFunctionEquality(t *testing.T) {
	if got := run(t, "f = func() { 1 }; g = f; f == g"); !got.Equal(types.NewBool(true)) {
		t.Errorf("same handle = %v, want true", got)
	}
	if got := run(t, "func() { 1 } == func() { 1 }"); !got.Equal(types.NewBool(false)) {
		t.Errorf("distinct handles = %v, want false", got)
	}
}

func TestEvalEmptyMapAccess(t *testing.T) {
	if got := run(t, "m = {}; m.missing"); !got.Equal(types.Nil) {
		t.Errorf("missing key = %v, want nil", got)
	}
	err := runErr(t, "x = 1; x.field")
	if types.CodeOf(err) != types.ErrNotAMap {
		t.Errorf("error = %v, want NotAMap", err)
	}
}

func TestEvalMapsShareByReference(t *testing.T) {
	got := run(t, "a = {}; b = a; a == b")
	if !got.Equal(types.NewBool(true)) {
		t.Errorf("a == b = %v, want true", got)
	}
}

func TestEvalParseErrorsBlockExecution(t *testing.T) {
	ev := New()
	ev.Define("probe", types.NewNumber(1))
	if _, err := ev.Run("probe = 2; $"); err == nil {
		t.Fatal("Run succeeded with a parse error")
	}
	if got := ev.Locals().Get("probe"); !got.Equal(types.NewNumber(1)) {
		t.Errorf("probe = %v, want 1: program with diagnostics ran anyway", got)
	}
}

func TestEvalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.sk")
	if err := os.WriteFile(path, []byte("inner = x + 1; inner"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := New()
	if _, err := ev.Run("x = 41"); err != nil {
		t.Fatal(err)
	}
	got, err := ev.EvalFile(path)
	if err != nil {
		t.Fatalf("EvalFile: %v", err)
	}
	if !got.Equal(types.NewNumber(42)) {
		t.Errorf("EvalFile = %v, want 42", got)
	}
	// the file's top-level bindings lived in a nested scope
	if ev.Locals().Exists("inner") {
		t.Error("file-local binding escaped into the caller")
	}
}

func TestEvalFileWithParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.sk")
	if err := os.WriteFile(path, []byte("x = $"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New().EvalFile(path); err == nil {
		t.Fatal("EvalFile succeeded on a file with parse errors")
	}
}
