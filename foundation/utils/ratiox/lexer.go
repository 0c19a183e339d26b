// File: lexer.go
// Title: Numeric Literal Lexer
// Description: Splits textual numeric input into tokens (signs, digit runs,
//              radix point, exponent marker, fraction slash, whitespace).
//              The classifier works on this token stream instead of matching
//              regular expressions against the raw text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial lexer implementation

package ratiox

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenSign     // + or -
	TokenDigits   // 0-9 run
	TokenDot      // .
	TokenExponent // e or E
	TokenSlash    // /
	TokenSpace    // whitespace run
)

// Token represents a lexical token with its byte position in the input
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenSign:
		return "SIGN"
	case TokenDigits:
		return "DIGITS"
	case TokenDot:
		return "DOT"
	case TokenExponent:
		return "EXPONENT"
	case TokenSlash:
		return "SLASH"
	case TokenSpace:
		return "SPACE"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of numeric text. Only ASCII input is
// recognised; any other byte becomes a TokenIllegal.
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination, 0 at end of input
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. After the end of input
// it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	pos := l.position

	switch {
	case l.ch == 0 && l.position >= len(l.input):
		return Token{Type: TokenEOF, Position: pos}
	case isSpace(l.ch):
		return Token{Type: TokenSpace, Value: l.readWhile(isSpace), Position: pos}
	case isDigit(l.ch):
		return Token{Type: TokenDigits, Value: l.readWhile(isDigit), Position: pos}
	}

	var tok Token
	switch l.ch {
	case '+', '-':
		tok = Token{Type: TokenSign, Value: string(l.ch), Position: pos}
	case '.':
		tok = Token{Type: TokenDot, Value: ".", Position: pos}
	case 'e', 'E':
		tok = Token{Type: TokenExponent, Value: string(l.ch), Position: pos}
	case '/':
		tok = Token{Type: TokenSlash, Value: "/", Position: pos}
	default:
		tok = Token{Type: TokenIllegal, Value: string(l.ch), Position: pos}
	}
	l.readChar()
	return tok
}

// Tokenize returns all tokens of input, terminated by a single TokenEOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for l.position < len(l.input) && pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
