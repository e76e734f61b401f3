package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger writing to cfg.File, or stderr when unset.
// verbose forces debug level.
func NewLogger(cfg LoggingConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if strings.EqualFold(cfg.Format, "console") {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
	}

	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
