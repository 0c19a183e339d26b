// File: arith.go
// Title: Ratio Arithmetic and Comparison
// Description: Arithmetic, comparison, equation solving and approximation
//              on Ratio. Every operation returns a new Ratio that keeps the
//              receiver's reduce flag and separator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-08
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation
// - 2026-10-11 v0.2.0: Binary operations take a single Ratio operand; added Compare

package ratiox

import (
	"math"
	"strings"
)

// quantityTolerance ends ToQuantityOf early once a candidate is this close
const quantityTolerance = 1e-9

// Add returns r + other. Equal denominators are kept as they are.
func (r Ratio) Add(other Ratio) Ratio {
	if r.den == other.den {
		return r.clone(r.num+other.num, r.den)
	}
	return r.clone(r.num*other.den+other.num*r.den, r.den*other.den)
}

// Subtract returns r - other. Equal denominators are kept as they are.
func (r Ratio) Subtract(other Ratio) Ratio {
	if r.den == other.den {
		return r.clone(r.num-other.num, r.den)
	}
	return r.clone(r.num*other.den-other.num*r.den, r.den*other.den)
}

// Multiply returns r * other
func (r Ratio) Multiply(other Ratio) Ratio {
	return r.clone(r.num*other.num, r.den*other.den)
}

// Divide returns r / other. Dividing by zero gives ±Inf or NaN.
func (r Ratio) Divide(other Ratio) Ratio {
	return r.clone(r.num*other.den, r.den*other.num)
}

// Pow raises numerator and denominator to k
func (r Ratio) Pow(k float64) Ratio {
	return r.clone(math.Pow(r.num, k), math.Pow(r.den, k))
}

// Scale multiplies numerator and denominator by k. The value is unchanged.
func (r Ratio) Scale(k float64) Ratio {
	return r.clone(r.num*k, r.den*k)
}

// Descale divides numerator and denominator by k. The value is unchanged.
func (r Ratio) Descale(k float64) Ratio {
	return r.clone(r.num/k, r.den/k)
}

// Mod returns (numerator mod denominator)/1
func (r Ratio) Mod() Ratio {
	return r.clone(math.Mod(r.num, r.den), 1)
}

// Negate returns -r
func (r Ratio) Negate() Ratio {
	return r.clone(-r.num, r.den)
}

// Abs returns |r|
func (r Ratio) Abs() Ratio {
	return r.clone(math.Abs(r.num), r.den)
}

// Reciprocal swaps numerator and denominator
func (r Ratio) Reciprocal() Ratio {
	return r.clone(r.den, r.num)
}

// Simplify returns r in lowest terms
func (r Ratio) Simplify() Ratio {
	arr := Reduce(r)
	return r.clone(arr[0], arr[1])
}

// Equals reports whether both quotients are equal, so 1/2 equals 2/4
func (r Ratio) Equals(other Ratio) bool {
	return r.Float64() == other.Float64()
}

// DeepEquals reports whether both numerators and both denominators are
// equal, so 1/2 does not deep-equal 2/4
func (r Ratio) DeepEquals(other Ratio) bool {
	return r.num == other.num && r.den == other.den
}

// Compare returns -1 if r < other, +1 if r > other and 0 otherwise,
// including when either side is NaN.
func (r Ratio) Compare(other Ratio) int {
	a, b := r.Float64(), other.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsProper reports whether |numerator| < denominator
func (r Ratio) IsProper() bool {
	return math.Abs(r.num) < r.den
}

// FindX solves r = x/n or r = n/x for x, where pattern is "x/n" or "n/x"
// and n is any finite value New accepts, including fractions and mixed
// numbers ("x/1 1/2"). n stays an exact pair, so x is r*n or n/r without a
// float quotient in between. ok is false when no side is x or n is not a
// number.
//
//	New(1, 2).FindX("x/10")     // 10/2, ok
//	New(1, 2).FindX("10/x")     // 20/1, ok
//	New(1, 2).FindX("x/2.5")    // 25/20, ok
func (r Ratio) FindX(pattern string) (Ratio, bool) {
	// x/n splits at the first slash, n/x at the last, so n may be a fraction
	if left, right, found := strings.Cut(pattern, "/"); found && isUnknown(left) {
		n := New(strings.TrimSpace(right))
		if n.IsNaN() || strings.ContainsAny(right, "xX") {
			return Ratio{}, false
		}
		return r.Multiply(n), true
	}

	if i := strings.LastIndex(pattern, "/"); i >= 0 && isUnknown(pattern[i+1:]) {
		left := pattern[:i]
		n := New(strings.TrimSpace(left))
		if n.IsNaN() || strings.ContainsAny(left, "xX") {
			return Ratio{}, false
		}
		return r.Reciprocal().Multiply(n), true
	}

	return Ratio{}, false
}

func isUnknown(s string) bool {
	s = strings.TrimSpace(s)
	return s == "x" || s == "X"
}

// ApproximateTo returns the closest fraction with denominator n, rounding
// halves up. A NaN or infinite n returns r unchanged.
func (r Ratio) ApproximateTo(n float64) Ratio {
	if !isFinite(n) {
		return r
	}
	return r.clone(math.Floor(r.Float64()*n+0.5), n)
}

// ToQuantityOf approximates r with each denominator in order and returns
// the first candidate within 1e-9 of r, or else the one with the smallest
// error. Without denominators the result is NaN.
func (r Ratio) ToQuantityOf(denominators ...float64) Ratio {
	if len(denominators) == 0 {
		return r.clone(math.NaN(), 1)
	}

	v := r.Float64()
	var best Ratio
	bestErr := math.Inf(1)
	for i, n := range denominators {
		candidate := r.ApproximateTo(n)
		err := math.Abs(candidate.Float64() - v)
		if err < quantityTolerance {
			return candidate
		}
		if i == 0 || err < bestErr {
			best, bestErr = candidate, err
		}
	}
	return best
}
