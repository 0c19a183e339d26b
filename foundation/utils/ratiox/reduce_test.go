// File: reduce_test.go
// Title: Unit Tests for the Reducer
// Description: Tests reduction to lowest terms, repeating decimal
//              reconstruction and idempotence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-07 v0.1.0: Initial test implementation

package ratiox

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    []Value
		want [2]float64
	}{
		{"one third", 1, []Value{3}, [2]float64{1, 3}},
		{"two sixths", 2, []Value{6}, [2]float64{1, 3}},
		{"decimal", 0.75, nil, [2]float64{3, 4}},
		{"repeating decimal float", 1.0 / 3, nil, [2]float64{1, 3}},
		{"non-repeating prefix", 22, []Value{70}, [2]float64{11, 35}},
		{"one sixth", 1, []Value{6}, [2]float64{1, 6}},
		{"one seventh", 1, []Value{7}, [2]float64{1, 7}},
		{"negative", -1, []Value{3}, [2]float64{-1, 3}},
		{"mixed text", "3 1/7", nil, [2]float64{22, 7}},
		{"scientific pair", "22e31", []Value{"70e30"}, [2]float64{22, 7}},
		{"scaled pair", 220, []Value{70}, [2]float64{22, 7}},
		{"sign stays on denominator", 36, []Value{-36}, [2]float64{1, -1}},
		{"ratio operand", New(36, -36), nil, [2]float64{-1, 1}},
		{"whole", 10, []Value{2}, [2]float64{5, 1}},
		{"zero", 0, []Value{5}, [2]float64{0, 1}},
		{"zero denominator", 3, []Value{0}, [2]float64{1, 0}},
		{"not a number", "abc", nil, [2]float64{math.NaN(), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.a, tt.b...)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReduce_Idempotent(t *testing.T) {
	pairs := [][2]float64{
		{1, 3}, {22, 70}, {22, 7}, {36, -36}, {8, 12}, {-5, 6}, {1, 11}, {360, 1024}, {999, 27},
	}

	for _, p := range pairs {
		once := Reduce(p[0], p[1])
		twice := Reduce(once[0], once[1])
		if once != twice {
			t.Errorf("Reduce(%v, %v) = %v, reduced again = %v", p[0], p[1], once, twice)
		}
	}
}
