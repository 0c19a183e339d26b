// File: classify.go
// Title: Numeric Classifier
// Description: Inspects a raw value (Go number, string or Ratio) and returns
//              the Kind that selects the parsing strategy. Strings are
//              recognised by a small recursive descent over the lexer's
//              token stream.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial classifier
// - 2026-10-09 v0.1.1: Mixed numbers accept a signed fraction part ("3 -1/7")

package ratiox

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Value is any input accepted by the constructors and static helpers:
// Go integer and float types, string, Ratio and *Ratio. Everything else is
// treated as not-a-number.
type Value = interface{}

// Kind is the discrete type tag returned by TypeGuess
type Kind int

const (
	KindNaN Kind = iota
	KindRatio
	KindNumber
	KindENotation
	KindDecimal
	KindMixed
	KindFraction
)

// String returns the tag name
func (k Kind) String() string {
	switch k {
	case KindRatio:
		return "Ratio"
	case KindNumber:
		return "number"
	case KindENotation:
		return "e"
	case KindDecimal:
		return "decimal"
	case KindMixed:
		return "mixed"
	case KindFraction:
		return "fraction"
	default:
		return "NaN"
	}
}

// literal is the tagged result of scanning a string. Only the fields that
// belong to kind are set.
type literal struct {
	kind   Kind
	value  float64 // KindNumber, KindDecimal, KindENotation
	text   string  // numeric text as written
	whole  string  // KindMixed
	top    string  // KindFraction, KindMixed
	bottom string  // KindFraction, KindMixed
}

// TypeGuess classifies v. Priority: Ratio, finite number (e-notation before
// decimal before integer), fraction or mixed number text, NaN.
func TypeGuess(v Value) Kind {
	return classify(v).kind
}

// IsNumeric reports whether v is, or reads as, a finite number. A Ratio is
// numeric when its quotient is finite.
func IsNumeric(v Value) bool {
	switch x := v.(type) {
	case Ratio:
		return isFinite(x.Float64())
	case *Ratio:
		return x != nil && isFinite(x.Float64())
	case string:
		lit := scanLiteral(x)
		return lit.kind != KindNaN && lit.kind != KindFraction && lit.kind != KindMixed
	}
	f, ok := toFloat(v)
	return ok && isFinite(f)
}

func classify(v Value) literal {
	switch x := v.(type) {
	case Ratio:
		return literal{kind: KindRatio}
	case *Ratio:
		if x == nil {
			return literal{kind: KindNaN}
		}
		return literal{kind: KindRatio}
	case string:
		return scanLiteral(x)
	}

	f, ok := toFloat(v)
	if !ok || !isFinite(f) {
		return literal{kind: KindNaN}
	}
	text := FormatNumber(f)
	return literal{kind: numberKind(text, f), value: f, text: text}
}

func numberKind(text string, f float64) Kind {
	switch {
	case strings.ContainsAny(text, "eE"):
		return KindENotation
	case f != math.Trunc(f):
		return KindDecimal
	default:
		return KindNumber
	}
}

// scanLiteral recognises, after trimming surrounding whitespace:
//
//	number   = [sign] (digits ["." [digits]] | "." digits) [exp [sign] digits]
//	fraction = number {space} "/" {space} number
//	mixed    = number space {space} fraction
func scanLiteral(s string) literal {
	p := &literalParser{tokens: Tokenize(strings.TrimSpace(s))}

	first, ok := p.number()
	if !ok {
		return literal{kind: KindNaN}
	}
	if p.atEOF() {
		f := parseFloat(first)
		if !isFinite(f) {
			return literal{kind: KindNaN}
		}
		return literal{kind: numberKind(first, f), value: f, text: first}
	}

	spaced := p.skipSpace()
	if p.peek().Type == TokenSlash {
		p.next()
		p.skipSpace()
		bottom, ok := p.number()
		if !ok || !p.atEOF() {
			return literal{kind: KindNaN}
		}
		return literal{kind: KindFraction, top: first, bottom: bottom}
	}
	if !spaced {
		return literal{kind: KindNaN}
	}

	top, ok := p.number()
	if !ok {
		return literal{kind: KindNaN}
	}
	p.skipSpace()
	if p.next().Type != TokenSlash {
		return literal{kind: KindNaN}
	}
	p.skipSpace()
	bottom, ok := p.number()
	if !ok || !p.atEOF() {
		return literal{kind: KindNaN}
	}
	return literal{kind: KindMixed, whole: first, top: top, bottom: bottom}
}

type literalParser struct {
	tokens []Token
	pos    int
}

func (p *literalParser) peek() Token {
	return p.tokens[p.pos]
}

func (p *literalParser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *literalParser) atEOF() bool {
	return p.peek().Type == TokenEOF
}

func (p *literalParser) skipSpace() bool {
	if p.peek().Type == TokenSpace {
		p.next()
		return true
	}
	return false
}

// number consumes one number production and returns its text. On failure
// the position is restored.
func (p *literalParser) number() (string, bool) {
	start := p.pos
	var sb strings.Builder

	if p.peek().Type == TokenSign {
		sb.WriteString(p.next().Value)
	}

	digits := false
	if p.peek().Type == TokenDigits {
		sb.WriteString(p.next().Value)
		digits = true
	}
	if p.peek().Type == TokenDot {
		sb.WriteString(p.next().Value)
		if p.peek().Type == TokenDigits {
			sb.WriteString(p.next().Value)
			digits = true
		}
	}
	if !digits {
		p.pos = start
		return "", false
	}

	if p.peek().Type == TokenExponent {
		sb.WriteString(p.next().Value)
		if p.peek().Type == TokenSign {
			sb.WriteString(p.next().Value)
		}
		if p.peek().Type != TokenDigits {
			p.pos = start
			return "", false
		}
		sb.WriteString(p.next().Value)
	}

	return sb.String(), true
}

// parseFloat converts number text to float64. Out of range text becomes ±Inf
// or 0 the way strconv reports it; anything else unparseable becomes NaN.
func parseFloat(text string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func toFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
