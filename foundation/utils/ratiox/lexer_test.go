// File: lexer_test.go
// Title: Unit Tests for the Numeric Literal Lexer
// Description: Tests token types, values and positions for numeric text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial test implementation

package ratiox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Position: 0},
			},
		},
		{
			name:  "signed scientific",
			input: "-1.5e+30",
			expected: []Token{
				{Type: TokenSign, Value: "-", Position: 0},
				{Type: TokenDigits, Value: "1", Position: 1},
				{Type: TokenDot, Value: ".", Position: 2},
				{Type: TokenDigits, Value: "5", Position: 3},
				{Type: TokenExponent, Value: "e", Position: 4},
				{Type: TokenSign, Value: "+", Position: 5},
				{Type: TokenDigits, Value: "30", Position: 6},
				{Type: TokenEOF, Position: 8},
			},
		},
		{
			name:  "mixed number",
			input: "3  1/7",
			expected: []Token{
				{Type: TokenDigits, Value: "3", Position: 0},
				{Type: TokenSpace, Value: "  ", Position: 1},
				{Type: TokenDigits, Value: "1", Position: 3},
				{Type: TokenSlash, Value: "/", Position: 4},
				{Type: TokenDigits, Value: "7", Position: 5},
				{Type: TokenEOF, Position: 6},
			},
		},
		{
			name:  "illegal characters",
			input: "1x",
			expected: []Token{
				{Type: TokenDigits, Value: "1", Position: 0},
				{Type: TokenIllegal, Value: "x", Position: 1},
				{Type: TokenEOF, Position: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := NewLexer("7")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokenEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok)
		}
	}
}

func TestToken_String(t *testing.T) {
	if got := (Token{Type: TokenDigits, Value: "42"}).String(); got != "DIGITS(42)" {
		t.Errorf("String() = %q, want %q", got, "DIGITS(42)")
	}
	if got := (Token{Type: TokenEOF}).String(); got != "EOF" {
		t.Errorf("String() = %q, want EOF", got)
	}
	if got := TokenType(99).String(); got != "UNKNOWN" {
		t.Errorf("TokenType(99).String() = %q, want UNKNOWN", got)
	}
}
