// File: parse.go
// Title: Parser
// Description: Converts a classified value into an exact [numerator,
//              denominator] pair. Decimals and scientific notation are
//              rebuilt from their digits so that no float division is
//              involved in the conversion.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial parser
// - 2026-10-09 v0.1.1: Scientific strings keep their written mantissa

package ratiox

import (
	"math"
	"strings"
)

// ParseToArray converts v into a [numerator, denominator] pair according to
// its Kind. Unrecognised input yields [NaN, 1].
func ParseToArray(v Value) [2]float64 {
	lit := classify(v)

	switch lit.kind {
	case KindNumber:
		return [2]float64{lit.value, 1}
	case KindDecimal:
		return parseDecimal(FormatNumber(lit.value))
	case KindENotation:
		return parseENotation(lit.text)
	case KindFraction:
		return parseFraction(lit.top, lit.bottom)
	case KindMixed:
		return parseMixed(lit.whole, lit.top, lit.bottom)
	case KindRatio:
		r := asRatio(v)
		return [2]float64{r.num, r.den}
	default:
		return [2]float64{math.NaN(), 1}
	}
}

// Parse converts a into a pair. When b is given and not nil, b is parsed as
// well and a is divided by it: num *= den(b), den *= num(b). Parse("1/2",
// "1/3") therefore yields [3, 2].
func Parse(a Value, b ...Value) [2]float64 {
	arr := ParseToArray(a)
	if len(b) > 0 && b[0] != nil {
		arr2 := ParseToArray(b[0])
		arr[0] *= arr2[1]
		arr[1] *= arr2[0]
	}
	return arr
}

// NumeratorWithSign returns |top| carrying the sign of top*bottom. A zero or
// NaN bottom counts as 1.
func NumeratorWithSign(top, bottom float64) float64 {
	if bottom == 0 || math.IsNaN(bottom) {
		bottom = 1
	}
	if top*bottom < 0 {
		return -math.Abs(top)
	}
	return math.Abs(top)
}

// parseDecimal splits decimal text on the radix point. The sign comes from
// the integer text so that "-0.5" keeps its sign.
func parseDecimal(text string) [2]float64 {
	if strings.ContainsAny(text, "eE") {
		return parseENotation(text)
	}

	intPart, frac, ok := strings.Cut(text, ".")
	if !ok {
		return [2]float64{parseFloat(text), 1}
	}

	factor := math.Pow10(len(frac))
	num := math.Abs(parseFloat(intPart))*factor + parseFloat(frac)
	if strings.HasPrefix(intPart, "-") {
		num = -num
	}
	return [2]float64{num, factor}
}

// parseENotation parses the mantissa recursively and applies the power of
// ten to the numerator for a positive exponent or to the denominator for a
// negative one.
func parseENotation(text string) [2]float64 {
	idx := strings.IndexAny(text, "eE")
	if idx < 0 {
		return ParseToArray(parseFloat(text))
	}

	arr := ParseToArray(text[:idx])
	exp := parseFloat(text[idx+1:])
	if math.IsNaN(exp) {
		return [2]float64{math.NaN(), 1}
	}

	// A positive exponent first cancels the mantissa's decimal places so
	// "2.2e32" becomes 22e31 instead of 22e32/10.
	for exp > 0 && arr[1] >= 10 && math.Mod(arr[1], 10) == 0 {
		arr[1] /= 10
		exp--
	}

	power := math.Pow10(int(math.Abs(exp)))
	if exp < 0 {
		arr[1] *= power
	} else {
		arr[0] *= power
	}
	return arr
}

func parseFraction(top, bottom string) [2]float64 {
	t, b := parseFloat(top), parseFloat(bottom)
	return [2]float64{NumeratorWithSign(t, b), math.Abs(b)}
}

// parseMixed combines the whole part with the fraction. The sign is taken
// from whole*numerator, so "-3 1/7" and "3 -1/7" both give -22/7.
func parseMixed(whole, top, bottom string) [2]float64 {
	w := parseFloat(whole)
	arr := parseFraction(top, bottom)

	num := math.Abs(arr[0]) + math.Abs(w*arr[1])
	if w*arr[0] < 0 {
		num = -num
	}
	return [2]float64{num, arr[1]}
}

func asRatio(v Value) Ratio {
	switch x := v.(type) {
	case Ratio:
		return x
	case *Ratio:
		return *x
	}
	return Ratio{num: math.NaN(), den: 1}
}
