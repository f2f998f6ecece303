package eval

import (
	"fmt"
	"os"
	"strings"

	"skiff/ast"
	"skiff/parser"
	"skiff/trace"
	"skiff/types"
)

// Evaluator walks the AST directly, producing a value for every node.
// It owns a LocalStack for variable bindings and a pair of break
// fields that model loop termination as state rather than as an error:
// once breaking is set, block evaluation stops statement-by-statement
// and every loop the flag reaches decides whether it is the target.
type Evaluator struct {
	locals     *LocalStack
	breaking   bool
	breakLabel string
}

// New creates an evaluator with a single open root scope
func New() *Evaluator {
	e := &Evaluator{locals: NewLocalStack()}
	e.locals.Push()
	return e
}

// Locals exposes the binding stack, mainly for installing builtins
// into the root scope before any program runs
func (e *Evaluator) Locals() *LocalStack {
	return e.locals
}

// Define binds a name in the current scope without searching enclosing
// scopes
func (e *Evaluator) Define(name string, v types.Value) {
	e.locals.Bind(name, v)
}

// ClearBreak drops any pending loop-termination state. A top-level
// break with no enclosing loop leaves the flag raised; interactive
// callers clear it between inputs.
func (e *Evaluator) ClearBreak() {
	e.breaking = false
	e.breakLabel = ""
}

// Run parses source and evaluates it. Parse diagnostics make the
// program unrunnable; they are reported together in the returned
// error and nothing executes.
func (e *Evaluator) Run(source string) (types.Value, error) {
	program, diags := parser.Parse(source)
	if len(diags) > 0 {
		msgs := make([]string, len(diags))
		for i, d := range diags {
			msgs[i] = d.Message
		}
		return nil, fmt.Errorf("%d parse error(s): %s", len(diags), strings.Join(msgs, "; "))
	}
	e.ClearBreak()
	return e.Eval(program)
}

// EvalFile reads, parses and executes a source file against this
// evaluator in a nested scope. Bindings the file creates at its top
// level are discarded when it finishes; mutations to shared compound
// values persist.
func (e *Evaluator) EvalFile(path string) (types.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	program, diags := parser.Parse(string(src))
	if len(diags) > 0 {
		msgs := make([]string, len(diags))
		for i, d := range diags {
			msgs[i] = d.Message
		}
		return nil, fmt.Errorf("%s: %d parse error(s): %s", path, len(diags), strings.Join(msgs, "; "))
	}

	e.locals.Push()
	defer e.locals.Pop()
	return e.Eval(program)
}

// Eval evaluates a single node. Every node produces a value; runtime
// errors propagate up through the recursion unchanged.
func (e *Evaluator) Eval(node ast.Node) (types.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		return types.NewNumber(n.Val), nil
	case *ast.StringLit:
		// each evaluation yields a fresh handle
		return types.NewStr(n.Val), nil
	case *ast.BoolLit:
		return types.NewBool(n.Val), nil
	case *ast.NilLit:
		return types.Nil, nil
	case *ast.EmptyMapLit:
		return types.NewMap(), nil
	case *ast.Ident:
		return e.locals.Get(n.Name), nil
	case *ast.Assign:
		return e.evalAssign(n)
	case *ast.FuncLit:
		return types.NewUserFunc(n.Name, n.Params, n.Body), nil
	case *ast.Call:
		return e.evalCall(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Binary:
		return e.evalBinary(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.Loop:
		return e.evalLoop(n)
	case *ast.Break:
		e.breaking = true
		e.breakLabel = n.Label
		return types.Nil, nil
	case *ast.BadExpr:
		// programs with parse diagnostics must never reach execution
		panic("eval: evaluating a node that failed to parse")
	default:
		panic(fmt.Sprintf("eval: unhandled node %T", node))
	}
}

// evalAssign evaluates the right-hand side and rebinds the nearest
// visible binding, creating one in the current scope when the name is
// unbound. Assignment itself yields nil.
func (e *Evaluator) evalAssign(n *ast.Assign) (types.Value, error) {
	v, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	e.locals.Set(n.Name, v)
	return types.Nil, nil
}

// evalBlock runs statements in order, yielding the last statement's
// value. A scoped block opens and closes its own scope; the program
// root and named-function declarations use unscoped blocks. Once the
// break flag is raised, remaining statements are skipped.
func (e *Evaluator) evalBlock(n *ast.Block) (types.Value, error) {
	if n.Scoped {
		e.locals.Push()
		defer e.locals.Pop()
	}

	result := types.Value(types.Nil)
	for _, stmt := range n.Stmts {
		v, err := e.Eval(stmt.Expr)
		if err != nil {
			return nil, err
		}
		result = v
		if e.breaking {
			break
		}
	}
	return result, nil
}

// evalIf evaluates the condition by truthiness. A missing or
// unselected branch yields nil.
func (e *Evaluator) evalIf(n *ast.If) (types.Value, error) {
	cond, err := e.Eval(n.Cond)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return types.Nil, nil
}

// evalLoop repeats its body until a break targets it. A false
// condition skips the body for that iteration but never terminates the
// loop. When the break flag arrives, an unlabeled break or a label
// matching this loop stops here and clears the flag; a label naming a
// different loop stops here too but leaves the flag raised so outer
// loops keep terminating. Loops always yield nil.
func (e *Evaluator) evalLoop(n *ast.Loop) (types.Value, error) {
	for {
		if e.breaking {
			if e.breakLabel == "" || e.breakLabel == n.Label {
				e.breaking = false
				e.breakLabel = ""
			}
			return types.Nil, nil
		}

		if n.Cond != nil {
			cond, err := e.Eval(n.Cond)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				continue
			}
		}

		if _, err := e.Eval(n.Body); err != nil {
			return nil, err
		}
	}
}

// evalCall evaluates the callee and arguments left to right, then
// dispatches on the function flavor
func (e *Evaluator) evalCall(n *ast.Call) (types.Value, error) {
	callee, err := e.Eval(n.Callee)
	if err != nil {
		return nil, err
	}
	fn, err := types.AsFunc(callee)
	if err != nil {
		return nil, err
	}

	args := make([]types.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return e.CallFunc(fn, args)
}

// CallFunc invokes a function value with already-evaluated arguments.
// Native functions run in Go; user functions get a fresh scope holding
// exactly their parameter bindings.
func (e *Evaluator) CallFunc(fn *types.Func, args []types.Value) (types.Value, error) {
	name := fn.Name
	if name == "" {
		name = "<anonymous>"
	}
	trace.Call(name, args)

	var result types.Value
	var err error
	if fn.IsNative() {
		result, err = fn.Native(e, args)
	} else {
		result, err = e.callUserFunc(fn, args)
	}

	if err != nil {
		trace.Fail(name, err)
		return nil, err
	}
	trace.Return(name, result)
	return result, nil
}

func (e *Evaluator) callUserFunc(fn *types.Func, args []types.Value) (types.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, types.NewError(types.ErrBadArgCount)
	}

	e.locals.Push()
	defer e.locals.Pop()
	for i, param := range fn.Params {
		// parameters shadow, they never rebind enclosing names
		e.locals.Bind(param, args[i])
	}
	return e.Eval(fn.Body)
}
