// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"log/slog"
	"os"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, added to every record as "logger"
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Destination (default: stderr). Stdout belongs to the calculator display.
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a logger from cfg. An unknown level falls back to info.
func NewLogger(cfg LoggerConfig) *Logger {
	level, _ := ParseLevel(cfg.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level.slogLevel())

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: levelVar}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	base := slog.New(handler)
	if cfg.ServiceName != "" {
		base = base.With("logger", cfg.ServiceName)
	}

	return &Logger{
		slog:  base,
		level: levelVar,
		name:  cfg.ServiceName,
	}
}

// New creates a logger with default configuration
func New(name string) *Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	cfg := DefaultLoggerConfig("")
	cfg.Output = io.Discard
	return NewLogger(cfg)
}
