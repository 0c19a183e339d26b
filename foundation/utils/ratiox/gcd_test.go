// File: gcd_test.go
// Title: Unit Tests for GCD and Prime Factorisation
// Description: Tests the GCD edge case convention and checks prime factors
//              against an independent prime table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial test implementation

package ratiox

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/otiai10/primes"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"common factor", 12, 18, 6},
		{"negative operand", -12, 18, 6},
		{"both negative", -12, -18, 6},
		{"coprime", 17, 5, 1},
		{"zero left", 0, 5, 5},
		{"zero right", 5, 0, 5},
		{"both zero", 0, 0, 1},
		{"NaN", math.NaN(), 3, 1},
		{"infinite", math.Inf(1), 3, 1},
		{"large", 314285400, 99999900, 14285700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GCD(tt.a, tt.b); got != tt.want {
				t.Errorf("GCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGCD_SymmetricAndDivides(t *testing.T) {
	values := []float64{-360, -49, -1, 1, 2, 9, 12, 35, 97, 360, 1024, 999999}
	for _, a := range values {
		for _, b := range values {
			g := GCD(a, b)
			if g != GCD(b, a) {
				t.Errorf("GCD(%v, %v) = %v but GCD(%v, %v) = %v", a, b, g, b, a, GCD(b, a))
			}
			if math.Mod(a, g) != 0 || math.Mod(b, g) != 0 {
				t.Errorf("GCD(%v, %v) = %v does not divide both", a, b, g)
			}
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    float64
		want []float64
	}{
		{2, []float64{2}},
		{12, []float64{2, 2, 3}},
		{97, []float64{97}},
		{360, []float64{2, 2, 2, 3, 3, 5}},
		{600851475143, []float64{71, 839, 1471, 6857}},
		{1, nil},
		{0, nil},
		{-8, nil},
		{2.5, nil},
		{math.NaN(), nil},
		{math.Inf(1), nil},
	}

	for _, tt := range tests {
		got := PrimeFactors(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PrimeFactors(%v) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestPrimeFactors_AgainstPrimeTable(t *testing.T) {
	const limit = 2000

	isPrime := make(map[float64]bool)
	for _, p := range primes.Until(limit).List() {
		isPrime[float64(p)] = true
	}

	for n := 2; n <= limit; n++ {
		factors := PrimeFactors(float64(n))
		product := 1.0
		for i, f := range factors {
			if !isPrime[f] {
				t.Fatalf("PrimeFactors(%d) contains non-prime %v", n, f)
			}
			if i > 0 && f < factors[i-1] {
				t.Fatalf("PrimeFactors(%d) = %v is not ascending", n, factors)
			}
			product *= f
		}
		if product != float64(n) {
			t.Fatalf("PrimeFactors(%d) = %v multiplies to %v", n, factors, product)
		}
		if isPrime[float64(n)] && len(factors) != 1 {
			t.Errorf("PrimeFactors(%d) = %v, want a single factor", n, factors)
		}
	}
}
