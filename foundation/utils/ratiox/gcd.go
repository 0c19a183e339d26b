// File: gcd.go
// Title: GCD and Prime Factorisation
// Description: Integer helpers on float64 operands: Euclidean greatest common
//              divisor and trial division prime factorisation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package ratiox

import "math"

// GCD returns the non-negative greatest common divisor of a and b using the
// Euclidean algorithm.
//
// Edge cases: GCD(a, 0) is |a|, GCD(0, 0) is 1 and a NaN or infinite operand
// yields 1, so dividing a pair by the result never produces NaN on its own.
func GCD(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return 1
	}

	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	if a == 0 {
		return 1
	}
	return a
}

// PrimeFactors returns the prime factors of n in ascending order, with
// multiplicity. n ≤ 1, non-finite or non-integral n yields nil.
func PrimeFactors(n float64) []float64 {
	if !isFinite(n) || n <= 1 || n != math.Trunc(n) {
		return nil
	}

	var factors []float64
	for math.Mod(n, 2) == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for d := 3.0; d*d <= n; d += 2 {
		for math.Mod(n, d) == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
