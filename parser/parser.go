package parser

import (
	"fmt"

	"skiff/ast"
)

// Parser builds an AST from the token stream using precedence
// climbing. It keeps a two-token lookahead window (current, peek) and
// accumulates syntax diagnostics instead of aborting: a malformed
// construct records a ParseError, leaves a BadExpr in its place, and
// parsing continues with the sibling constructs.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
	errors  []ParseError
}

// NewParser creates a new Parser instance, priming the lookahead
// window one token ahead
func NewParser(input string) *Parser {
	p := &Parser{
		lexer:   NewLexer(input),
		current: Token{Type: TOKEN_START},
	}
	p.peek = p.lexer.NextToken()
	return p
}

// Parse parses a complete program and returns the root block together
// with the accumulated diagnostics. The root block does not open a
// scope of its own. A well-formed program finishes with zero
// diagnostics; only then may the AST be executed.
func Parse(source string) (*ast.Block, []ParseError) {
	p := NewParser(source)
	return p.ParseProgram()
}

// ParseProgram parses statements until end of input
func (p *Parser) ParseProgram() (*ast.Block, []ParseError) {
	block := &ast.Block{Stmts: p.parseStmts(false), Scoped: false}
	return block, p.errors
}

// Errors returns the diagnostics accumulated so far
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// nextToken advances the lookahead window
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// pick advances past the upcoming token if it has the given type
func (p *Parser) pick(t TokenType) bool {
	if p.peek.Type == t {
		p.nextToken()
		return true
	}
	return false
}

// expectPeek advances when the upcoming token matches, otherwise
// records a diagnostic
func (p *Parser) expectPeek(t TokenType, what string) bool {
	if p.peek.Type == t {
		p.nextToken()
		return true
	}
	p.errorf(p.peek.Span, "expected %s, got %s", what, p.peek.Type)
	return false
}

// errorf records a parse diagnostic
func (p *Parser) errorf(span Span, format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// parseStmts collects statements until a closing brace (expectEnd) or
// end of input. Semicolons between statements are skipped.
func (p *Parser) parseStmts(expectEnd bool) []ast.Stmt {
	var stmts []ast.Stmt
	for {
		for p.pick(TOKEN_SEMICOLON) {
		}
		if expectEnd && p.pick(TOKEN_RBRACE) {
			break
		}
		if p.peek.Type == TOKEN_EOF {
			if expectEnd {
				p.errorf(p.peek.Span, "expected closing `}`")
			}
			break
		}
		stmts = append(stmts, ast.Stmt{Expr: p.parseExpression()})
	}
	return stmts
}

// parseBlockBody parses statements up to the matching close brace.
// The caller has already consumed the opening brace.
func (p *Parser) parseBlockBody(scoped bool) *ast.Block {
	return &ast.Block{Stmts: p.parseStmts(true), Scoped: scoped}
}

// parseBraceExpr handles `{` in prefix position: `{}` is an empty map
// literal, anything else is a scoped block expression whose value is
// its last statement's value
func (p *Parser) parseBraceExpr() ast.Node {
	if p.pick(TOKEN_RBRACE) {
		return &ast.EmptyMapLit{}
	}
	return p.parseBlockBody(true)
}

// parseFunc parses a function literal. A named function
// `func name(params) { body }` lowers to an unscoped block binding the
// name to an anonymous function and then evaluating the name, so the
// binding escapes to the enclosing scope and the declaration yields
// the function value.
func (p *Parser) parseFunc() ast.Node {
	name := ""
	if p.pick(TOKEN_IDENTIFIER) {
		name = p.current.Value
	}

	if !p.expectPeek(TOKEN_LPAREN, "`(` to start the parameter list") {
		return &ast.BadExpr{}
	}

	var params []string
	if !p.pick(TOKEN_RPAREN) {
		for {
			if !p.expectPeek(TOKEN_IDENTIFIER, "a parameter name") {
				return &ast.BadExpr{}
			}
			params = append(params, p.current.Value)
			if p.pick(TOKEN_COMMA) {
				continue
			}
			if !p.expectPeek(TOKEN_RPAREN, "`)` after the parameter list") {
				return &ast.BadExpr{}
			}
			break
		}
	}

	if !p.expectPeek(TOKEN_LBRACE, "`{` to open the function body") {
		return &ast.BadExpr{}
	}
	body := p.parseBlockBody(true)

	fn := &ast.FuncLit{Name: name, Params: params, Body: body}
	if name == "" {
		return fn
	}
	return &ast.Block{
		Scoped: false,
		Stmts: []ast.Stmt{
			{Expr: &ast.Assign{Name: name, Value: fn}},
			{Expr: &ast.Ident{Name: name}},
		},
	}
}

// parseIf parses `if cond { then }` with an optional `else` followed
// by either a brace block or another if (else-if chains by recursion)
func (p *Parser) parseIf() ast.Node {
	cond := p.parseExpression()

	if !p.expectPeek(TOKEN_LBRACE, "`{` after the if condition") {
		return &ast.BadExpr{}
	}
	then := p.parseBlockBody(true)

	var alt ast.Node
	if p.pick(TOKEN_ELSE) {
		if p.pick(TOKEN_LBRACE) {
			alt = p.parseBlockBody(true)
		} else if p.pick(TOKEN_IF) {
			alt = p.parseIf()
		} else {
			p.errorf(p.peek.Span, "expected block or if expression after `else`")
			return &ast.BadExpr{}
		}
	}

	return &ast.If{Cond: cond, Then: then, Else: alt}
}

// parseLoop parses `loop [@label] [cond] { body }`. The condition
// guards each body run; only break terminates the loop.
func (p *Parser) parseLoop() ast.Node {
	label := ""
	if p.pick(TOKEN_AT) {
		if !p.expectPeek(TOKEN_IDENTIFIER, "a loop label after `@`") {
			return &ast.BadExpr{}
		}
		label = p.current.Value
	}

	var cond ast.Node
	if !p.pick(TOKEN_LBRACE) {
		cond = p.parseExpression()
		if !p.expectPeek(TOKEN_LBRACE, "`{` to open the loop body") {
			return &ast.BadExpr{}
		}
	}
	body := p.parseBlockBody(true)

	return &ast.Loop{Label: label, Cond: cond, Body: body}
}

// parseBreak parses `break` with an optional bare identifier label
func (p *Parser) parseBreak() ast.Node {
	label := ""
	if p.pick(TOKEN_IDENTIFIER) {
		label = p.current.Value
	}
	return &ast.Break{Label: label}
}
