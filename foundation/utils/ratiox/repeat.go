// File: repeat.go
// Title: Repeating Decimal Detector
// Description: Best-effort textual heuristic that finds a repeating digit
//              cycle at the end of a decimal rendering, e.g. the "285714" in
//              "3.142857142857143".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package ratiox

import "strings"

const (
	// minFractionDigits is the shortest fractional part that is searched.
	// Shorter renderings are exact decimals or too short to tell a cycle
	// from rounding noise.
	minFractionDigits = 10

	// minCycleLength is the shortest cycle matched before it is minimised.
	minCycleLength = 2
)

// RepeatProps splits a decimal rendering into [integerPart, nonRepeating,
// cycle]. It returns nil when no cycle is found.
//
// The cycle must be at least two digits long and repeat at least twice up to
// the end of the string; the last digit may be ignored because float64
// rendering rounds it. A matched cycle is reduced to its primitive period
// ("33" becomes "3"). Cycles of only zeros or only nines are rejected: they
// are terminating decimals or rounding noise. Other single-digit cycles are
// kept on purpose, so "0.3333333333333333" gives ["0", "", "3"] and
// reduces to 1/3, unlike a rule that rejects every cycle collapsing to one
// repeated digit.
//
// False negatives are expected: cycles longer than half of the printed
// digits and values that need more than ~16 significant digits are missed.
func RepeatProps(s string) []string {
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok || !isIntegerText(intPart) || !isDigitText(frac) {
		return nil
	}

	candidates := []string{frac}
	if len(frac) > 0 {
		candidates = append(candidates, frac[:len(frac)-1])
	}

	for _, digits := range candidates {
		if len(digits) < minFractionDigits {
			continue
		}
		nonRepeating, cycle, found := findCycle(digits)
		if !found {
			continue
		}
		if cycle == "0" || cycle == "9" {
			return nil
		}
		return []string{intPart, nonRepeating, cycle}
	}
	return nil
}

// findCycle looks for the shortest prefix after which the digits are an
// exact repetition of one cycle.
func findCycle(digits string) (string, string, bool) {
	for p := 0; p+2*minCycleLength <= len(digits); p++ {
		tail := digits[p:]
		for l := minCycleLength; 2*l <= len(tail); l++ {
			if len(tail)%l == 0 && repeats(tail, l) {
				return digits[:p], primitive(tail[:l]), true
			}
		}
	}
	return "", "", false
}

// repeats reports whether s consists of copies of its first l bytes.
func repeats(s string, l int) bool {
	for i := l; i < len(s); i++ {
		if s[i] != s[i-l] {
			return false
		}
	}
	return true
}

func primitive(cycle string) string {
	for l := 1; l < len(cycle); l++ {
		if len(cycle)%l == 0 && repeats(cycle, l) {
			return cycle[:l]
		}
	}
	return cycle
}

func isDigitText(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isIntegerText(s string) bool {
	return isDigitText(strings.TrimPrefix(s, "-"))
}
