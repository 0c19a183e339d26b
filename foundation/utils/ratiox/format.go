// File: format.go
// Title: Formatter
// Description: Renders numbers and ratios as text: the canonical number
//              rendering used by classification and repeat detection, the
//              fraction and mixed number forms, and the floating point
//              cleanup of CleanFormat.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-08
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation
// - 2026-10-10 v0.1.1: Added ToExponential

package ratiox

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Plain notation is used for magnitudes in [minPlain, maxPlain).
	minPlain = 1e-6
	maxPlain = 1e21

	// wholeTolerance is how close a value must be to an integer for
	// LocaleString to print it as that integer.
	wholeTolerance = 1e-9

	// minNoiseRun is the shortest run of trailing 0s or 9s that
	// CleanENotation treats as floating point noise.
	minNoiseRun = 6
)

// FormatNumber renders f with the shortest digits that round-trip, the way
// JavaScript prints numbers: "NaN", "Infinity", "-Infinity", "0" for both
// zeros, exponent form ("1e-7", "2.2e+32") when |f| < 1e-6 or |f| >= 1e21,
// plain decimal form otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs < minPlain || abs >= maxPlain {
		return shortExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// shortExponent turns strconv's "1.5e+07" into "1.5e+7"
func shortExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || exp == "" {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}

// String returns numerator, separator and denominator, never reduced
func (r Ratio) String() string {
	return FormatNumber(r.num) + r.Separator() + FormatNumber(r.den)
}

// LocaleString returns the human facing form: "NaN", a plain number for
// whole values, a rounded integer for values within 1e-9 of one, a mixed
// number such as "3 1/7" for |value| > 1, and String() otherwise.
func (r Ratio) LocaleString() string {
	v := r.Float64()
	if math.IsNaN(v) {
		return "NaN"
	}

	rem := math.Mod(r.num, r.den)
	if v == math.Trunc(v) || r.den == 1 || !isFinite(rem) {
		return FormatNumber(v)
	}

	if math.Abs(v) > 1 {
		if rounded := math.Round(v); math.Abs(rounded-v) < wholeTolerance {
			return FormatNumber(rounded)
		}
		return FormatNumber(math.Trunc(v)) + " " +
			FormatNumber(math.Abs(rem)) + r.Separator() + FormatNumber(r.den)
	}

	return r.String()
}

// CleanFormat returns an all-integer copy of r. Fields that render as plain
// decimals are re-parsed as a fraction (reduced when r reduces); otherwise
// each field is rounded to drop trailing 0/9 runs left by float arithmetic.
func (r Ratio) CleanFormat() Ratio {
	ns, ds := FormatNumber(r.num), FormatNumber(r.den)

	if isPlainDecimal(ns) || isPlainDecimal(ds) {
		var arr [2]float64
		if r.alwaysReduce {
			arr = Reduce(ns, ds)
		} else {
			arr = Parse(ns, ds)
		}
		return r.clone(arr[0], arr[1])
	}

	return r.clone(parseFloat(CleanENotation(r.num)), parseFloat(CleanENotation(r.den)))
}

// isPlainDecimal matches "-?digits.digits"
func isPlainDecimal(s string) bool {
	tokens := Tokenize(s)
	if len(tokens) > 0 && tokens[0].Type == TokenSign && tokens[0].Value == "-" {
		tokens = tokens[1:]
	}
	return len(tokens) == 4 &&
		tokens[0].Type == TokenDigits &&
		tokens[1].Type == TokenDot &&
		tokens[2].Type == TokenDigits &&
		tokens[3].Type == TokenEOF
}

// CleanENotation rounds away a trailing run of at least six 0s or 9s in the
// significant digits of f, e.g. 0.30000000000000004 becomes "0.3" and
// 129999.99999999999 becomes "1.3e+5". Values without such a run are
// rendered by FormatNumber unchanged.
func CleanENotation(f float64) string {
	if !isFinite(f) || f == 0 {
		return FormatNumber(f)
	}

	mantissa, _, _ := strings.Cut(strconv.FormatFloat(math.Abs(f), 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)

	for i := 1; i < len(digits); i++ {
		c := digits[i]
		if c != '0' && c != '9' {
			continue
		}
		j := i
		for j < len(digits) && digits[j] == c {
			j++
		}
		if j-i >= minNoiseRun && len(digits)-j <= 2 {
			return toPrecision(f, i)
		}
	}
	return FormatNumber(f)
}

// toPrecision mirrors JavaScript's Number.prototype.toPrecision for
// finite, non-zero f.
func toPrecision(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'e', precision-1, 64)
	_, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	if e < -6 || e >= precision {
		return shortExponent(s)
	}
	return strconv.FormatFloat(f, 'f', precision-1-e, 64)
}

// ToExponential renders the value in scientific notation with the given
// number of digits after the radix point, e.g. "3.14e+0" for 22/7 and 2.
// Non-finite values are rendered by FormatNumber.
func (r Ratio) ToExponential(digits int) string {
	v := r.Float64()
	if !isFinite(v) {
		return FormatNumber(v)
	}
	if digits < 0 {
		digits = 0
	}
	return shortExponent(strconv.FormatFloat(v, 'e', digits, 64))
}
