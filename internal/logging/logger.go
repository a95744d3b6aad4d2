// Package logging builds the zap logger dex writes to while the TUI owns the
// terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// ParseLevel accepts zap level names. Empty means info.
func ParseLevel(raw string) (zap.AtomicLevel, error) {
	level := zap.NewAtomicLevel()
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		text = defaultLevel
	}
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return level, fmt.Errorf("log level %q: %w", raw, err)
	}
	return level, nil
}

// New returns a JSON logger appending to path, creating parent directories as
// needed. The returned logger must be synced by the caller on exit.
func New(path, level string) (*zap.Logger, error) {
	atomic, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.Config{
		Level:             atomic,
		Encoding:          "json",
		EncoderConfig:     encoderConfig(),
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
		DisableCaller:     false,
		DisableStacktrace: true,
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("dex"), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
