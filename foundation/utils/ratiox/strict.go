// File: strict.go
// Title: Strict Parsing
// Description: Error returning entry points for callers that must tell
//              invalid input apart from a NaN result, such as the command
//              line tool and the text codecs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package ratiox

import (
	mdwerror "github.com/msto63/ratio/foundation/core/error"
	mdwerrors "github.com/msto63/ratio/foundation/core/errors"
)

// AcceptedFormats describes the textual forms ParseStrict understands
const AcceptedFormats = `integer "22", decimal "3.14", scientific "1.1e-30", fraction "22/7" or mixed "3 1/7"`

// ParseStrict parses s like New, but returns an INVALID_FORMAT error for
// text that is not a finite number, fraction or mixed number, and a
// DIVISION_BY_ZERO error for a zero denominator.
func ParseStrict(s string) (Ratio, error) {
	if scanLiteral(s).kind == KindNaN {
		return Ratio{}, mdwerrors.InvalidFormat(mdwerrors.ModuleRatiox, "parse", s, AcceptedFormats)
	}

	r := New(s)
	if err := r.validate("parse"); err != nil {
		return Ratio{}, err
	}
	return r, nil
}

// MustParse is like ParseStrict but panics on error. Use it for constants.
func MustParse(s string) Ratio {
	r, err := ParseStrict(s)
	if err != nil {
		panic(err)
	}
	return r
}

// validate rejects ratios that have no finite value
func (r Ratio) validate(operation string) error {
	if r.den == 0 {
		return mdwerror.Newf("division by zero: %s", r.String()).
			WithCode(mdwerror.CodeDivisionByZero).
			WithOperation(operation).
			WithDetail("module", mdwerrors.ModuleRatiox).
			WithDetail("input", r.String())
	}
	if !isFinite(r.num) || !isFinite(r.den) {
		return mdwerrors.InvalidInput(mdwerrors.ModuleRatiox, operation, r.String(), "finite numerator and denominator")
	}
	return nil
}
