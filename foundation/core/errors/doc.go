// Package errors provides module-level constructors on top of the structured
// error type in foundation/core/error.
//
// Package: errors
// Title: Standardized Module Errors
// Description: Every module of the ratio project reports failures through the
//              constructors in this package so that module and operation names
//              end up in the same detail keys and codes are chosen consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-12 v0.2.0: Constructors for ratiox, config and cli modules
package errors
