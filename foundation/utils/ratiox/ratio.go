// File: ratio.go
// Title: Ratio Value Type
// Description: Immutable numerator/denominator value. All construction goes
//              through one correction step that keeps the denominator
//              non-negative, carries the sign on the numerator and optionally
//              reduces to lowest terms.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-08
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation
// - 2026-10-11 v0.2.0: Separator option, With* copies instead of setters

package ratiox

import "math"

// DefaultSeparator is placed between numerator and denominator by String
const DefaultSeparator = "/"

// Ratio is an exact fraction of two float64 values. Integral fields are the
// normal case; NaN and ±Inf propagate like ordinary float arithmetic.
//
// Ratio is a value type: methods never modify the receiver and return a new
// Ratio instead. The zero value Ratio{} is 0/0, which is NaN; use New to get
// 0/1.
type Ratio struct {
	num          float64
	den          float64
	alwaysReduce bool
	separator    string
}

// New creates a Ratio from up to two operands. No operand gives 0/1, one
// operand is parsed with ParseToArray and two operands with Parse, so
// New(1, 3) is 1/3 and New("1/2", "1/3") is 3/2. A nil operand counts as
// missing; operands beyond the second are ignored.
func New(values ...Value) Ratio {
	return build(false, values)
}

// NewReduced is like New but the result, and every Ratio derived from it,
// is kept in lowest terms.
func NewReduced(values ...Value) Ratio {
	return build(true, values)
}

func build(alwaysReduce bool, values []Value) Ratio {
	var a Value = 0
	if len(values) > 0 && values[0] != nil {
		a = values[0]
	}

	var arr [2]float64
	if len(values) > 1 {
		arr = Parse(a, values[1])
	} else {
		arr = Parse(a)
	}
	return newRatio(arr[0], arr[1], alwaysReduce, DefaultSeparator)
}

func newRatio(num, den float64, alwaysReduce bool, separator string) Ratio {
	return Ratio{
		num:          num,
		den:          den,
		alwaysReduce: alwaysReduce,
		separator:    separator,
	}.correct()
}

// correct normalises the fields: den >= 0, the sign lives on num, and the
// pair is reduced when alwaysReduce is set and den != 0.
func (r Ratio) correct() Ratio {
	sign := r.den
	r.den = math.Abs(r.den)
	r.num = NumeratorWithSign(r.num, sign)

	if r.alwaysReduce && r.den != 0 {
		arr := Reduce(r.num, r.den)
		r.num, r.den = arr[0], arr[1]
	}
	return r
}

// clone returns a corrected copy with new fields that keeps the reduce flag
// and separator.
func (r Ratio) clone(num, den float64) Ratio {
	return newRatio(num, den, r.alwaysReduce, r.separator)
}

// WithNumerator returns a copy of r with numerator n
func (r Ratio) WithNumerator(n float64) Ratio {
	return r.clone(n, r.den)
}

// WithDenominator returns a copy of r with denominator d. A negative d moves
// its sign onto the numerator.
func (r Ratio) WithDenominator(d float64) Ratio {
	return r.clone(r.num, d)
}

// WithAlwaysReduce returns a copy of r with the reduce flag set to reduce.
// Enabling it reduces the copy immediately.
func (r Ratio) WithAlwaysReduce(reduce bool) Ratio {
	return newRatio(r.num, r.den, reduce, r.separator)
}

// WithSeparator returns a copy of r that String prints with sep. An empty
// sep restores DefaultSeparator.
func (r Ratio) WithSeparator(sep string) Ratio {
	r.separator = sep
	return r
}

// Numerator returns the signed numerator
func (r Ratio) Numerator() float64 {
	return r.num
}

// Denominator returns the denominator, which is never negative
func (r Ratio) Denominator() float64 {
	return r.den
}

// AlwaysReduce reports whether r is kept in lowest terms
func (r Ratio) AlwaysReduce() bool {
	return r.alwaysReduce
}

// Separator returns the separator used by String
func (r Ratio) Separator() string {
	if r.separator == "" {
		return DefaultSeparator
	}
	return r.separator
}

// Float64 returns numerator / denominator
func (r Ratio) Float64() float64 {
	return r.num / r.den
}

// ToArray returns [numerator, denominator]
func (r Ratio) ToArray() [2]float64 {
	return [2]float64{r.num, r.den}
}

// IsNaN reports whether the quotient is NaN
func (r Ratio) IsNaN() bool {
	return math.IsNaN(r.Float64())
}

// Sign returns -1, 0 or +1. NaN values have sign 0.
func (r Ratio) Sign() int {
	v := r.Float64()
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
