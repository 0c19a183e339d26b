// Package error provides structured error handling for the ratio module.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type that carries a code, a severity, an
//              operation name and free-form details in addition to the message.
//              The ratio library itself never fails (invalid input degrades to
//              NaN); these errors are produced by the strict parsing entry
//              points, the configuration loader and the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Trimmed to the codes used by ratio parsing and configuration
//
// Usage:
//   import mdwerror "github.com/msto63/ratio/foundation/core/error"
//
//   err := mdwerror.New("not a rational number").
//     WithCode(mdwerror.CodeInvalidFormat).
//     WithDetail("input", "3 1/x")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//     // report the bad input
//   }
package error
