package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_START TokenType = iota // sentinel before the first token
	TOKEN_EOF
	TOKEN_ILLEGAL

	// Literals
	TOKEN_NUMBER // 3.14
	TOKEN_STRING // "hello"

	// Keywords
	TOKEN_LET
	TOKEN_CONST
	TOKEN_PUB
	TOKEN_USE
	TOKEN_FUNC
	TOKEN_ENUM
	TOKEN_STRUCT
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NIL
	TOKEN_LOOP
	TOKEN_BREAK

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_ASSIGN     // =
	TOKEN_EQ         // ==
	TOKEN_NE         // !=
	TOKEN_NOT        // !
	TOKEN_GT         // >
	TOKEN_GE         // >=
	TOKEN_LT         // <
	TOKEN_LE         // <=
	TOKEN_PLUS       // +
	TOKEN_PLUS_EQ    // +=
	TOKEN_MINUS      // -
	TOKEN_MINUS_EQ   // -=
	TOKEN_STAR       // *
	TOKEN_STAR_EQ    // *=
	TOKEN_SLASH      // /
	TOKEN_SLASH_EQ   // /=
	TOKEN_POW        // **
	TOKEN_POW_EQ     // **=
	TOKEN_PERCENT    // %
	TOKEN_PERCENT_EQ // %=
	TOKEN_AND        // &&
	TOKEN_OR         // ||
	TOKEN_ARROW      // ->

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_DOT       // .
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_QUESTION  // ?
	TOKEN_AT        // @
)

// Token represents a lexical token. Tokens are produced lazily and
// never mutated after creation. Value carries the payload for
// identifiers, strings and illegal input; Num carries the parsed
// number literal.
type Token struct {
	Type  TokenType
	Value string
	Num   float64
	Span  Span
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_START:
		return "START"
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_LET:
		return "LET"
	case TOKEN_CONST:
		return "CONST"
	case TOKEN_PUB:
		return "PUB"
	case TOKEN_USE:
		return "USE"
	case TOKEN_FUNC:
		return "FUNC"
	case TOKEN_ENUM:
		return "ENUM"
	case TOKEN_STRUCT:
		return "STRUCT"
	case TOKEN_IF:
		return "IF"
	case TOKEN_ELSE:
		return "ELSE"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_NIL:
		return "NIL"
	case TOKEN_LOOP:
		return "LOOP"
	case TOKEN_BREAK:
		return "BREAK"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_ASSIGN:
		return "ASSIGN"
	case TOKEN_EQ:
		return "EQ"
	case TOKEN_NE:
		return "NE"
	case TOKEN_NOT:
		return "NOT"
	case TOKEN_GT:
		return "GT"
	case TOKEN_GE:
		return "GE"
	case TOKEN_LT:
		return "LT"
	case TOKEN_LE:
		return "LE"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_PLUS_EQ:
		return "PLUS_EQ"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_MINUS_EQ:
		return "MINUS_EQ"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_STAR_EQ:
		return "STAR_EQ"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_SLASH_EQ:
		return "SLASH_EQ"
	case TOKEN_POW:
		return "POW"
	case TOKEN_POW_EQ:
		return "POW_EQ"
	case TOKEN_PERCENT:
		return "PERCENT"
	case TOKEN_PERCENT_EQ:
		return "PERCENT_EQ"
	case TOKEN_AND:
		return "AND"
	case TOKEN_OR:
		return "OR"
	case TOKEN_ARROW:
		return "ARROW"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_SEMICOLON:
		return "SEMICOLON"
	case TOKEN_QUESTION:
		return "QUESTION"
	case TOKEN_AT:
		return "AT"
	default:
		return "UNKNOWN"
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"let":    TOKEN_LET,
	"const":  TOKEN_CONST,
	"pub":    TOKEN_PUB,
	"use":    TOKEN_USE,
	"func":   TOKEN_FUNC,
	"enum":   TOKEN_ENUM,
	"struct": TOKEN_STRUCT,
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"nil":    TOKEN_NIL,
	"loop":   TOKEN_LOOP,
	"break":  TOKEN_BREAK,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
