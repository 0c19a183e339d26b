// File: standards.go
// Title: Error Standards for the ratio Modules
// Description: Provides standardized error constructors so all modules attach
//              the same "module" and "operation" details and pick codes the
//              same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Replaced the foundation module table with ratiox, config and cli

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/ratio/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleRatiox = "ratiox"
	ModuleMathx  = "mathx"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// InvalidFormat reports input that does not match any accepted textual format
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid format for %s.%s: %v", module, operation, input)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":          module,
			"operation":       operation,
			"input":           input,
			"expected_format": expectedFormat,
		})
}

// InvalidInput reports a syntactically valid but unusable argument
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// OutOfRange reports a value outside of its permitted range
func OutOfRange(module, field string, value, min, max interface{}) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("validation failed: %s out of range [%v, %v]: %v", field, min, max, value)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
			"min":    min,
			"max":    max,
		})
}

// UnknownOperator reports an arithmetic operator the caller does not support
func UnknownOperator(module, operator string, supported []string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("unknown operator %q", operator)).
		WithCode(mdwerror.CodeInvalidOperation).
		WithOperation("calc").
		WithDetails(map[string]interface{}{
			"module":    module,
			"operator":  operator,
			"supported": supported,
		})
}

// ConfigError wraps a failure while loading or validating configuration
func ConfigError(operation, path string, cause error) *mdwerror.Error {
	msg := fmt.Sprintf("%s.%s failed", ModuleConfig, operation)
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}
	return err.
		WithCode(mdwerror.CodeConfigError).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    ModuleConfig,
			"operation": operation,
			"path":      path,
		})
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		if mod, ok := mdwErr.Details()["module"].(string); ok {
			return mod
		}
	}
	return ""
}
