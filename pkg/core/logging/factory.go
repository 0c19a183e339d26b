// ============================================================================
// ratio - Exact Fractions from Heterogeneous Input
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating zap loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, used as the logger name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "console" (default: console)

	// Output writer (default: stderr, so results on stdout stay clean)
	Output io.Writer

	// Run identifier attached to every entry; generated when empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewLogger creates a zap logger that tags every entry with the service
// name and a run_id.
func NewLogger(cfg LoggerConfig) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), ParseLevel(cfg.Level).zapLevel())
	return zap.New(core).Named(cfg.ServiceName).With(zap.String("run_id", runID))
}

// NewRunID returns a fresh identifier for one invocation
func NewRunID() string {
	return uuid.NewString()
}
