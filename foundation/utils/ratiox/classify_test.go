// File: classify_test.go
// Title: Unit Tests for the Numeric Classifier
// Description: Tests kind detection for Go numbers, numeric strings, fractions,
//              mixed numbers and ratios.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial test implementation
// - 2026-10-09 v0.1.1: Signed fraction part in mixed numbers

package ratiox

import (
	"math"
	"testing"
)

func TestTypeGuess(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  Kind
	}{
		{"ratio", New(1, 2), KindRatio},
		{"ratio pointer", &Ratio{num: 1, den: 2}, KindRatio},
		{"nil ratio pointer", (*Ratio)(nil), KindNaN},
		{"int", 22, KindNumber},
		{"int64", int64(-7), KindNumber},
		{"uint8", uint8(3), KindNumber},
		{"whole float", 3.0, KindNumber},
		{"float", 3.14, KindDecimal},
		{"float32", float32(0.5), KindDecimal},
		{"large float", 1e21, KindENotation},
		{"tiny float", 1.1e-30, KindENotation},
		{"NaN", math.NaN(), KindNaN},
		{"Inf", math.Inf(1), KindNaN},
		{"integer text", "22", KindNumber},
		{"signed integer text", "+5", KindNumber},
		{"decimal text", "3.14", KindDecimal},
		{"bare fraction digits", ".5", KindDecimal},
		{"scientific text", "1.1e-30", KindENotation},
		{"scientific whole text", "1e5", KindENotation},
		{"fraction", "22/7", KindFraction},
		{"spaced fraction", " 22 / 7 ", KindFraction},
		{"negative fraction", "-22/-7", KindFraction},
		{"mixed", "3 1/7", KindMixed},
		{"mixed wide", "3\t 1 /7", KindMixed},
		{"mixed signed fraction", "3 -1/7", KindMixed},
		{"word", "abc", KindNaN},
		{"empty", "", KindNaN},
		{"double fraction", "1/2/3", KindNaN},
		{"trailing garbage", "22/7x", KindNaN},
		{"two numbers", "3 4", KindNaN},
		{"overflow", "1e400", KindNaN},
		{"exponent without digits", "1e", KindNaN},
		{"nil", nil, KindNaN},
		{"struct", struct{}{}, KindNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeGuess(tt.input); got != tt.want {
				t.Errorf("TypeGuess(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindNaN:       "NaN",
		KindRatio:     "Ratio",
		KindNumber:    "number",
		KindENotation: "e",
		KindDecimal:   "decimal",
		KindMixed:     "mixed",
		KindFraction:  "fraction",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input Value
		want  bool
	}{
		{42, true},
		{-0.5, true},
		{"1.1e-30", true},
		{"22", true},
		{New(1, 3), true},
		{New(1, 0), false},
		{"22/7", false},
		{"3 1/7", false},
		{"abc", false},
		{math.NaN(), false},
		{math.Inf(-1), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.input); got != tt.want {
			t.Errorf("IsNumeric(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
