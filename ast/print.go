package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sexpr renders a node as a compact s-expression. Used by tests and
// debugging output to compare tree shapes without walking them by
// hand.
func Sexpr(n Node) string {
	switch v := n.(type) {
	case *NumberLit:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case *StringLit:
		return strconv.Quote(v.Val)
	case *BoolLit:
		if v.Val {
			return "true"
		}
		return "false"
	case *NilLit:
		return "nil"
	case *EmptyMapLit:
		return "(map)"
	case *Ident:
		return v.Name
	case *Assign:
		return "(= " + v.Name + " " + Sexpr(v.Value) + ")"
	case *Unary:
		return "(" + v.Op.String() + " " + Sexpr(v.Operand) + ")"
	case *Binary:
		return "(" + v.Op.String() + " " + Sexpr(v.Left) + " " + Sexpr(v.Right) + ")"
	case *Call:
		parts := []string{"call", Sexpr(v.Callee)}
		for _, a := range v.Args {
			parts = append(parts, Sexpr(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *If:
		s := "(if " + Sexpr(v.Cond) + " " + Sexpr(v.Then)
		if v.Else != nil {
			s += " " + Sexpr(v.Else)
		}
		return s + ")"
	case *Block:
		head := "block"
		if v.Scoped {
			head = "scope"
		}
		parts := []string{head}
		for _, s := range v.Stmts {
			parts = append(parts, Sexpr(s.Expr))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Loop:
		parts := []string{"loop"}
		if v.Label != "" {
			parts = append(parts, "@"+v.Label)
		}
		if v.Cond != nil {
			parts = append(parts, Sexpr(v.Cond))
		}
		parts = append(parts, Sexpr(v.Body))
		return "(" + strings.Join(parts, " ") + ")"
	case *Break:
		if v.Label != "" {
			return "(break " + v.Label + ")"
		}
		return "(break)"
	case *FuncLit:
		name := v.Name
		if name == "" {
			name = "_"
		}
		return "(func " + name + " (" + strings.Join(v.Params, " ") + ") " + Sexpr(v.Body) + ")"
	case *BadExpr:
		return "(bad)"
	default:
		return fmt.Sprintf("(?%T)", n)
	}
}
