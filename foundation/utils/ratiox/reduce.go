// File: reduce.go
// Title: Reducer
// Description: Brings a pair to lowest terms. When the quotient renders as a
//              repeating decimal the fraction is rebuilt from the digit cycle
//              instead of the rounded float digits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package ratiox

import (
	"math"
	"strings"
)

// Reduce parses (a, b) like Parse and returns the pair in lowest terms.
//
// If the rendered quotient has a repeating cycle (see RepeatProps), the exact
// fraction of that repeating decimal is used:
//
//	num = digits(int nonrep cycle) - digits(int nonrep)
//	den = 10^len(nonrep) * (10^len(cycle) - 1)
//
// so Reduce(1, 3) yields [1, 3] rather than a fraction of 0.3333333333333333.
// The sign is not moved onto the numerator: Reduce(36, -36) is [1, -1].
func Reduce(a Value, b ...Value) [2]float64 {
	arr := Parse(a, b...)
	num, den := arr[0], arr[1]

	quotient := num / den
	if props := RepeatProps(FormatNumber(quotient)); props != nil {
		whole := strings.TrimPrefix(props[0], "-")
		nonRepeating, cycle := props[1], props[2]

		num = parseFloat(whole+nonRepeating+cycle) - parseFloat(whole+nonRepeating)
		den = math.Pow10(len(nonRepeating)) * (math.Pow10(len(cycle)) - 1)
		if quotient < 0 {
			num = -num
		}
	}

	g := GCD(num, den)
	return [2]float64{num / g, den / g}
}
