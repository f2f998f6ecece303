package parser

import (
	"strconv"
	"unicode"
)

// Lexer tokenizes skiff source code. It is pull-based: each NextToken
// call produces one token, and once the input is exhausted every
// further call keeps returning EOF. A single forward pass with one
// character of lookahead per decision; no backtracking across tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.position

	switch {
	case l.ch == 0:
		return l.emit(TOKEN_EOF, start)
	case isLetter(l.ch):
		return l.readIdentifier()
	case isDigit(l.ch):
		return l.readNumber()
	case l.ch == '"':
		return l.readString()
	}

	var typ TokenType
	switch l.ch {
	case '=':
		typ = l.eqOr(TOKEN_ASSIGN, TOKEN_EQ)
	case '!':
		typ = l.eqOr(TOKEN_NOT, TOKEN_NE)
	case '>':
		typ = l.eqOr(TOKEN_GT, TOKEN_GE)
	case '<':
		typ = l.eqOr(TOKEN_LT, TOKEN_LE)
	case '+':
		typ = l.eqOr(TOKEN_PLUS, TOKEN_PLUS_EQ)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			typ = TOKEN_ARROW
		} else {
			typ = l.eqOr(TOKEN_MINUS, TOKEN_MINUS_EQ)
		}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			typ = l.eqOr(TOKEN_POW, TOKEN_POW_EQ)
		} else {
			typ = l.eqOr(TOKEN_STAR, TOKEN_STAR_EQ)
		}
	case '/':
		typ = l.eqOr(TOKEN_SLASH, TOKEN_SLASH_EQ)
	case '%':
		typ = l.eqOr(TOKEN_PERCENT, TOKEN_PERCENT_EQ)
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			typ = TOKEN_AND
		} else {
			// a single & is not an operator
			tok := l.emit(TOKEN_ILLEGAL, start)
			tok.Value = string(l.input[start])
			l.readChar()
			tok.Span.End = l.position
			return tok
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			typ = TOKEN_OR
		} else {
			tok := l.emit(TOKEN_ILLEGAL, start)
			tok.Value = string(l.input[start])
			l.readChar()
			tok.Span.End = l.position
			return tok
		}
	case '(':
		typ = TOKEN_LPAREN
	case ')':
		typ = TOKEN_RPAREN
	case '{':
		typ = TOKEN_LBRACE
	case '}':
		typ = TOKEN_RBRACE
	case '[':
		typ = TOKEN_LBRACKET
	case ']':
		typ = TOKEN_RBRACKET
	case '.':
		typ = TOKEN_DOT
	case ',':
		typ = TOKEN_COMMA
	case ';':
		typ = TOKEN_SEMICOLON
	case '?':
		typ = TOKEN_QUESTION
	case '@':
		typ = TOKEN_AT
	default:
		tok := Token{
			Type:  TOKEN_ILLEGAL,
			Value: string(l.ch),
			Span:  NewSpan(start, l.position+1),
		}
		l.readChar()
		return tok
	}

	l.readChar()
	return Token{Type: typ, Span: NewSpan(start, l.position)}
}

// eqOr consumes a trailing '=' if present, selecting the compound
// variant
func (l *Lexer) eqOr(without, with TokenType) TokenType {
	if l.peekChar() == '=' {
		l.readChar()
		return with
	}
	return without
}

// emit builds a token spanning from start to the current position
func (l *Lexer) emit(typ TokenType, start int) Token {
	return Token{Type: typ, Span: NewSpan(start, l.position)}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.position]
	typ := LookupKeyword(word)
	tok := Token{Type: typ, Span: NewSpan(start, l.position)}
	if typ == TOKEN_IDENTIFIER {
		tok.Value = word
	}
	return tok
}

// readNumber reads a numeric literal (digits and '.') as a 64-bit
// float. Malformed numeric text like 1.2.3 becomes an ILLEGAL token
// for the parser to diagnose.
func (l *Lexer) readNumber() Token {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	text := l.input[start:l.position]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{Type: TOKEN_ILLEGAL, Value: text, Span: NewSpan(start, l.position)}
	}
	return Token{Type: TOKEN_NUMBER, Num: n, Span: NewSpan(start, l.position)}
}

// readString reads a string literal delimited by double quotes.
// There is no escape processing: the contents are the literal bytes
// between the quotes. An unterminated string is an ILLEGAL token.
func (l *Lexer) readString() Token {
	start := l.position
	l.readChar() // skip opening "
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		return Token{
			Type:  TOKEN_ILLEGAL,
			Value: l.input[start:l.position],
			Span:  NewSpan(start, l.position),
		}
	}
	contents := l.input[start+1 : l.position]
	l.readChar() // skip closing "
	return Token{Type: TOKEN_STRING, Value: contents, Span: NewSpan(start, l.position)}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
