package ast

// BinOp identifies a binary operator
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	OpEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpAnd
	OpOr
	OpAccess
)

// String returns the surface syntax for a binary operator
func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpAccess:
		return "."
	default:
		return "?"
	}
}

// UnOp identifies a unary operator
type UnOp int

const (
	OpNot UnOp = iota // !x
	OpNeg             // -x
)

// String returns the surface syntax for a unary operator
func (op UnOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "neg"
}

// Node is the interface all expression nodes implement
// The tree is built once by the parser and never mutated afterwards
type Node interface {
	node()
}

// Stmt is a single statement. Every statement is an expression
// evaluated for its value; all but the last value in a block are
// discarded.
type Stmt struct {
	Expr Node
}

// NumberLit is a numeric literal
type NumberLit struct {
	Val float64
}

// StringLit is a string literal
type StringLit struct {
	Val string
}

// BoolLit is true or false
type BoolLit struct {
	Val bool
}

// NilLit is the nil literal
type NilLit struct{}

// EmptyMapLit is {} in expression position
type EmptyMapLit struct{}

// Ident is a variable reference
type Ident struct {
	Name string
}

// Assign rebinds a name to the value of an expression
type Assign struct {
	Name  string
	Value Node
}

// Call invokes a callee with ordered arguments
type Call struct {
	Callee Node
	Args   []Node
}

// Binary applies a binary operator to two operands
type Binary struct {
	Op    BinOp
	Left  Node
	Right Node
}

// Unary applies a unary operator to one operand
type Unary struct {
	Op      UnOp
	Operand Node
}

// If evaluates Then or Else depending on the condition's truthiness.
// Else may be nil.
type If struct {
	Cond Node
	Then Node
	Else Node
}

// Block is an ordered statement list. Scoped records whether the block
// opens a fresh lexical scope: the named-function lowering produces an
// unscoped block so the bound name escapes to the enclosing scope.
type Block struct {
	Stmts  []Stmt
	Scoped bool
}

// Loop repeats its body until a matching break clears it. Cond, when
// present, guards each body run but never terminates the loop.
type Loop struct {
	Label string // "" = unlabeled
	Cond  Node   // nil = unconditional
	Body  Node
}

// Break sets the evaluator's exit flag. An empty label matches any
// enclosing loop.
type Break struct {
	Label string
}

// FuncLit is a function literal. Name is "" for anonymous functions.
type FuncLit struct {
	Name   string
	Params []string
	Body   *Block
}

// BadExpr stands in for a construct that failed to parse. A program
// with zero diagnostics never contains one; evaluating it is an
// internal consistency violation.
type BadExpr struct{}

func (*NumberLit) node()   {}
func (*StringLit) node()   {}
func (*BoolLit) node()     {}
func (*NilLit) node()      {}
func (*EmptyMapLit) node() {}
func (*Ident) node()       {}
func (*Assign) node()      {}
func (*Call) node()        {}
func (*Binary) node()      {}
func (*Unary) node()       {}
func (*If) node()          {}
func (*Block) node()       {}
func (*Loop) node()        {}
func (*Break) node()       {}
func (*FuncLit) node()     {}
func (*BadExpr) node()     {}
