// Package logging builds the zap logger shared by the CLI commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger writing human readable lines to stderr.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger returns an info level logger, or a debug level one when verbose
// is set.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	logger, err := build(level)
	if err != nil {
		return &Logger{zap.NewNop().Sugar()}
	}
	return logger
}

// NewWithLevel parses level ("debug", "info", "warn", "error"). verbose
// forces debug.
func NewWithLevel(level string, verbose bool) (*Logger, error) {
	if verbose {
		return build(zapcore.DebugLevel)
	}

	parsed := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		if err := parsed.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("log level: unsupported value %q", level)
		}
	}
	return build(parsed)
}

func build(level zapcore.Level) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = level > zapcore.DebugLevel
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{logger.Sugar()}, nil
}
