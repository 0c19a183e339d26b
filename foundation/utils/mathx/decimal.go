// File: decimal.go
// Title: Exact Decimal Expansion
// Description: Decimal wraps a big.Rat built from a float64 numerator and
//              denominator and renders it to a fixed number of places with
//              exact rounding.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values,
//                       improved decimal formatting for display purposes
// - 2026-10-16 v0.3.0: Built from ratios; Round works on integers so half-even
//                       is exact; terminating expansions are detected

package mathx

import (
	"math"
	"math/big"
	"strings"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
	"github.com/msto63/ratio/foundation/core/errors"
)

// DefaultPlaces is used by String for expansions that do not terminate
const DefaultPlaces = 20

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds to the nearest even number (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds 0.5 toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncate)
	RoundingModeDown
)

var roundingNames = map[RoundingMode]string{
	RoundingModeHalfUp:   "half-up",
	RoundingModeHalfEven: "half-even",
	RoundingModeHalfDown: "half-down",
	RoundingModeUp:       "up",
	RoundingModeDown:     "down",
}

// RoundingModes lists the names accepted by ParseRoundingMode
var RoundingModes = []string{"half-up", "half-even", "half-down", "up", "down"}

// String returns the mode name as accepted by ParseRoundingMode
func (m RoundingMode) String() string {
	if name, ok := roundingNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseRoundingMode parses a mode name such as "half-even". Case and
// underscores instead of dashes are accepted.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for m, n := range roundingNames {
		if n == name {
			return m, nil
		}
	}
	return RoundingModeHalfUp, errors.InvalidInput(errors.ModuleMathx, "rounding", s, strings.Join(RoundingModes, ", "))
}

// Decimal is an exact rational value used for decimal output
type Decimal struct {
	value *big.Rat
}

// FromRatio converts num/den without going through the float quotient.
// Both fields must be finite and den must not be zero.
func FromRatio(num, den float64) (Decimal, error) {
	if den == 0 {
		return Decimal{}, mdwerror.New("division by zero").
			WithCode(mdwerror.CodeDivisionByZero).
			WithOperation("expand").
			WithDetail("module", errors.ModuleMathx)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) || math.IsInf(den, 0) || math.IsNaN(den) {
		return Decimal{}, errors.InvalidInput(errors.ModuleMathx, "expand", []float64{num, den}, "finite numerator and denominator")
	}

	n := new(big.Rat).SetFloat64(num)
	d := new(big.Rat).SetFloat64(den)
	return Decimal{value: n.Quo(n, d)}, nil
}

// Rat returns a copy of the underlying rational
func (d Decimal) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Terminating reports whether the expansion ends and, if so, after how many
// places. A reduced denominator terminates iff it has no prime factors
// other than 2 and 5.
func (d Decimal) Terminating() (int, bool) {
	den := new(big.Int).Set(d.rat().Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	rem := new(big.Int)

	count := func(p *big.Int) int {
		n := 0
		for {
			q, r := new(big.Int).QuoRem(den, p, rem)
			if r.Sign() != 0 {
				return n
			}
			den = q
			n++
		}
	}
	twos, fives := count(two), count(five)

	if den.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// Round rounds the decimal to the specified number of decimal places using the given rounding mode
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))

	// q is truncated toward zero, r carries the sign of the numerator
	q, r := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if r.Sign() != 0 && awayFromZero(q, r, scaled.Denom(), mode) {
		if scaled.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// awayFromZero decides whether the truncated quotient q with non-zero
// remainder r over den moves one step away from zero.
func awayFromZero(q, r, den *big.Int, mode RoundingMode) bool {
	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	half := twice.Cmp(den)

	switch mode {
	case RoundingModeHalfUp:
		return half >= 0
	case RoundingModeHalfEven:
		return half > 0 || (half == 0 && q.Bit(0) == 1)
	case RoundingModeHalfDown:
		return half > 0
	case RoundingModeUp:
		return true
	default:
		return false
	}
}

// StringFixed returns the decimal rounded to exactly places digits after
// the point
func (d Decimal) StringFixed(places int, mode RoundingMode) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, mode).rat().FloatString(places)
}

// String returns the exact expansion when it terminates and otherwise
// DefaultPlaces digits rounded half-even
func (d Decimal) String() string {
	if places, ok := d.Terminating(); ok {
		return d.rat().FloatString(places)
	}
	return d.StringFixed(DefaultPlaces, RoundingModeHalfEven)
}
