// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the ratio module. Codes
//              classify failures of strict parsing, arithmetic requests made
//              through the command line and configuration loading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Reduced to parsing, arithmetic and configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing and arithmetic
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeDivisionByZero   Code = "DIVISION_BY_ZERO"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeInvalidFormat, CodeValueOutOfRange, CodeDivisionByZero, CodeInvalidOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeDivisionByZero, CodeInvalidOperation:
		return "arithmetic"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the command line tool.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "arithmetic":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}
