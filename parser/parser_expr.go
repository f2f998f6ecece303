package parser

import "skiff/ast"

// Binding precedences, low to high
const (
	PREC_NONE = iota
	PREC_ASSIGN
	PREC_OR
	PREC_AND
	PREC_EQ
	PREC_COMP
	PREC_TERM
	PREC_FACTOR
	PREC_POW
	PREC_UNARY
	PREC_CALL
	PREC_DOT
	PREC_PRIMARY
)

// precedence returns the infix binding precedence of a token type
func precedence(t TokenType) int {
	switch t {
	case TOKEN_PLUS, TOKEN_MINUS:
		return PREC_TERM
	case TOKEN_STAR, TOKEN_SLASH, TOKEN_PERCENT:
		return PREC_FACTOR
	case TOKEN_POW:
		return PREC_POW
	case TOKEN_GT, TOKEN_GE, TOKEN_LT, TOKEN_LE:
		return PREC_COMP
	case TOKEN_EQ, TOKEN_NE:
		return PREC_EQ
	case TOKEN_AND:
		return PREC_AND
	case TOKEN_OR:
		return PREC_OR
	case TOKEN_ASSIGN, TOKEN_PLUS_EQ, TOKEN_MINUS_EQ, TOKEN_STAR_EQ,
		TOKEN_SLASH_EQ, TOKEN_POW_EQ, TOKEN_PERCENT_EQ:
		return PREC_ASSIGN
	case TOKEN_LPAREN:
		return PREC_CALL
	case TOKEN_DOT:
		return PREC_DOT
	default:
		return PREC_NONE
	}
}

// compoundOps maps compound-assignment tokens to the binary operator
// they fold in
var compoundOps = map[TokenType]ast.BinOp{
	TOKEN_PLUS_EQ:    ast.OpAdd,
	TOKEN_MINUS_EQ:   ast.OpSub,
	TOKEN_STAR_EQ:    ast.OpMul,
	TOKEN_SLASH_EQ:   ast.OpDiv,
	TOKEN_POW_EQ:     ast.OpPow,
	TOKEN_PERCENT_EQ: ast.OpMod,
}

// binOps maps binary-operator tokens to AST operators
var binOps = map[TokenType]ast.BinOp{
	TOKEN_PLUS:    ast.OpAdd,
	TOKEN_MINUS:   ast.OpSub,
	TOKEN_STAR:    ast.OpMul,
	TOKEN_SLASH:   ast.OpDiv,
	TOKEN_POW:     ast.OpPow,
	TOKEN_PERCENT: ast.OpMod,
	TOKEN_EQ:      ast.OpEq,
	TOKEN_GT:      ast.OpGt,
	TOKEN_GE:      ast.OpGtEq,
	TOKEN_LT:      ast.OpLt,
	TOKEN_LE:      ast.OpLtEq,
	TOKEN_AND:     ast.OpAnd,
	TOKEN_OR:      ast.OpOr,
}

// parseExpression parses one expression at the lowest binding level
func (p *Parser) parseExpression() ast.Node {
	return p.parseWithPrec(PREC_ASSIGN)
}

// parseWithPrec is the precedence-climbing core: advance onto the next
// token, dispatch a prefix handler, then fold in infix operators while
// the upcoming token binds at least as tightly as min
func (p *Parser) parseWithPrec(min int) ast.Node {
	p.nextToken()
	node := p.parsePrefix()

	for min <= precedence(p.peek.Type) {
		p.nextToken()
		node = p.parseInfix(node)
	}
	return node
}

// parsePrefix dispatches on the current token in prefix position
func (p *Parser) parsePrefix() ast.Node {
	switch p.current.Type {
	case TOKEN_NUMBER:
		return &ast.NumberLit{Val: p.current.Num}
	case TOKEN_STRING:
		return &ast.StringLit{Val: p.current.Value}
	case TOKEN_TRUE:
		return &ast.BoolLit{Val: true}
	case TOKEN_FALSE:
		return &ast.BoolLit{Val: false}
	case TOKEN_NIL:
		return &ast.NilLit{}
	case TOKEN_IDENTIFIER:
		return &ast.Ident{Name: p.current.Value}
	case TOKEN_FUNC:
		return p.parseFunc()
	case TOKEN_IF:
		return p.parseIf()
	case TOKEN_LOOP:
		return p.parseLoop()
	case TOKEN_BREAK:
		return p.parseBreak()
	case TOKEN_LBRACE:
		return p.parseBraceExpr()
	case TOKEN_NOT:
		return &ast.Unary{Op: ast.OpNot, Operand: p.parseWithPrec(PREC_UNARY)}
	case TOKEN_MINUS:
		return &ast.Unary{Op: ast.OpNeg, Operand: p.parseWithPrec(PREC_UNARY)}
	case TOKEN_ILLEGAL:
		p.errorf(p.current.Span, "unrecognized input %q", p.current.Value)
		return &ast.BadExpr{}
	case TOKEN_EOF:
		p.errorf(p.current.Span, "unexpected end of input")
		return &ast.BadExpr{}
	default:
		p.errorf(p.current.Span, "unexpected token %s", p.current.Type)
		return &ast.BadExpr{}
	}
}

// parseInfix dispatches on the current token in infix position,
// rebinding the accumulated left-hand side
func (p *Parser) parseInfix(lhs ast.Node) ast.Node {
	switch p.current.Type {
	case TOKEN_LPAREN:
		return p.parseCall(lhs)
	case TOKEN_ASSIGN, TOKEN_PLUS_EQ, TOKEN_MINUS_EQ, TOKEN_STAR_EQ,
		TOKEN_SLASH_EQ, TOKEN_POW_EQ, TOKEN_PERCENT_EQ:
		return p.parseAssign(lhs)
	case TOKEN_DOT:
		return p.parseAccess(lhs)
	case TOKEN_NE:
		// `a != b` lowers to `!(a == b)`
		rhs := p.parseWithPrec(PREC_EQ + 1)
		return &ast.Unary{
			Op:      ast.OpNot,
			Operand: &ast.Binary{Op: ast.OpEq, Left: lhs, Right: rhs},
		}
	default:
		op, ok := binOps[p.current.Type]
		if !ok {
			p.errorf(p.current.Span, "%s is not an infix operator", p.current.Type)
			return &ast.BadExpr{}
		}
		rhs := p.parseWithPrec(precedence(p.current.Type) + 1)
		return &ast.Binary{Op: op, Left: lhs, Right: rhs}
	}
}

// parseCall parses a call argument list; current is the opening paren
func (p *Parser) parseCall(callee ast.Node) ast.Node {
	var args []ast.Node
	if !p.pick(TOKEN_RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if p.pick(TOKEN_COMMA) {
				continue
			}
			if !p.expectPeek(TOKEN_RPAREN, "`)` after the argument list") {
				break
			}
			break
		}
	}
	return &ast.Call{Callee: callee, Args: args}
}

// parseAssign parses (compound) assignment. Right-associative, and
// only valid when the left-hand side parsed as a plain identifier.
func (p *Parser) parseAssign(lhs ast.Node) ast.Node {
	op := p.current.Type
	target, ok := lhs.(*ast.Ident)
	if !ok {
		p.errorf(p.current.Span, "invalid assignment target")
		// still consume the right-hand side to keep parsing in sync
		p.parseWithPrec(PREC_ASSIGN)
		return &ast.BadExpr{}
	}

	rhs := p.parseWithPrec(PREC_ASSIGN)
	if binOp, compound := compoundOps[op]; compound {
		rhs = &ast.Binary{
			Op:    binOp,
			Left:  &ast.Ident{Name: target.Name},
			Right: rhs,
		}
	}
	return &ast.Assign{Name: target.Name, Value: rhs}
}

// parseAccess parses `.name` member access, lowering it to a binary
// Access whose right side is the member name as a string literal
func (p *Parser) parseAccess(lhs ast.Node) ast.Node {
	if !p.expectPeek(TOKEN_IDENTIFIER, "a member name after `.`") {
		return &ast.BadExpr{}
	}
	return &ast.Binary{
		Op:    ast.OpAccess,
		Left:  lhs,
		Right: &ast.StringLit{Val: p.current.Value},
	}
}
