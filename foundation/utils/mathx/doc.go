// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx expands a numerator/denominator pair into an
//              exact decimal string with a selectable rounding mode.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Reduced to exact decimal expansion of ratios; currency and
//                       business calculations removed

// Package mathx renders ratios as decimal numbers without float rounding.
//
// A ratiox.Ratio stores float64 fields, and its Float64 quotient is rounded
// to 53 bits. mathx converts both fields to math/big rationals first, so
// 1/3 expands to as many 3s as requested and 1/8 is recognised as the
// terminating decimal 0.125.
//
// Basic usage:
//
//	d, err := mathx.FromRatio(1, 7)
//	if err != nil {
//	    return err
//	}
//	d.StringFixed(6, mathx.RoundingModeHalfEven) // "0.142857"
//
//	d, _ = mathx.FromRatio(1, 8)
//	d.String() // "0.125"
//
// Rounding modes:
//
//	RoundingModeHalfUp    2.5 -> 3, -2.5 -> -3 (commercial rounding)
//	RoundingModeHalfEven  2.5 -> 2, 3.5 -> 4   (banker's rounding)
//	RoundingModeHalfDown  2.5 -> 2, -2.5 -> -2
//	RoundingModeUp        2.1 -> 3, -2.1 -> -3 (away from zero)
//	RoundingModeDown      2.9 -> 2, -2.9 -> -2 (truncate)
package mathx
