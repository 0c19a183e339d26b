// File: text.go
// Title: Text and JSON Encoding
// Description: encoding.TextMarshaler and json.Marshaler support so ratios
//              can be used in configuration files and JSON documents.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package ratiox

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MarshalText implements encoding.TextMarshaler. Ratios without a finite
// value cannot be encoded.
func (r Ratio) MarshalText() ([]byte, error) {
	if err := r.validate("marshal"); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver's reduce
// flag and separator are kept, and the separator is accepted in place of
// "/".
func (r *Ratio) UnmarshalText(text []byte) error {
	s := string(text)
	if sep := r.Separator(); sep != DefaultSeparator {
		s = strings.Replace(s, sep, DefaultSeparator, 1)
	}

	parsed, err := ParseStrict(s)
	if err != nil {
		return err
	}
	*r = newRatio(parsed.num, parsed.den, r.alwaysReduce, r.separator)
	return nil
}

// MarshalJSON encodes r as a JSON string such as "22/7"
func (r Ratio) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a JSON string ("3 1/7") or a JSON number (0.25).
// null leaves r unchanged.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return r.UnmarshalText([]byte(s))
	}
	return r.UnmarshalText(data)
}
