// Package ratiox provides an exact fraction value type built on native float64 range.
//
// Package: ratiox
// Title: Rational Numbers from Heterogeneous Input
// Description: Normalises integers, decimals, scientific notation, mixed
//              numbers ("3 1/7"), fraction strings ("22/7") and other Ratio
//              values into a numerator/denominator pair and offers arithmetic,
//              comparison, simplification and human readable formatting on it.
// Author: msto63
// Version: v0.4.0
// Created: 2026-10-05
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-05 v0.1.0: Lexer, classifier and parser
// - 2026-10-07 v0.2.0: Reducer with repeating decimal reconstruction
// - 2026-10-10 v0.3.0: Ratio value type, arithmetic and formatting
// - 2026-10-14 v0.4.0: Strict parsing and text/JSON codecs
//
// Overview
//
// A Ratio is an immutable value. Numerator and denominator are float64 so
// that NaN and ±Inf propagate the IEEE-754 way; integers are stored as whole
// float64 values and stay exact up to 2^53. Invalid input never fails: it
// degrades to NaN/1. Callers that need an error use ParseStrict.
//
// Every constructor runs the same correction step: the denominator is stored
// as its absolute value, the sign moves onto the numerator, and if the value
// was created with NewReduced it is brought to lowest terms.
//
// Usage Examples
//
//	r := ratiox.New("3 1/7")           // 22/7
//	r.String()                         // "22/7"
//	r.LocaleString()                   // "3 1/7"
//	r.Add(ratiox.New(1, 7)).String()   // "23/7"
//
//	ratiox.Reduce(0.75)                // [3 4]
//	ratiox.New(27, 100).ApproximateTo(3).String() // "1/3"
//
// Repeating decimals
//
// Reduce recognises repeating decimal expansions in the float64 rendering
// of a quotient (RepeatProps) and rebuilds the exact fraction, so that a
// value like 0.3333333333333333 reduces to 1/3 instead of a power-of-ten
// fraction. This is a best-effort textual heuristic: cycles that need more
// digits than float64 prints, or expansions with fewer than ten fractional
// digits, are not detected and the raw pair is reduced instead.
package ratiox

// Version identifies the ratiox API for compatibility checks.
const Version = "0.4.0"
