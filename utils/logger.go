package utils

import (
	"log"

	"hogarlink/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		cfg.Level = configuredLevel(zapcore.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = configuredLevel(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// configuredLevel parses LOG_LEVEL from config, falling back when the value
// is empty or unrecognized.
func configuredLevel(fallback zapcore.Level) zap.AtomicLevel {
	level := fallback
	if raw := config.AppConfig.LogLevel; raw != "" {
		if err := level.Set(raw); err != nil {
			level = fallback
		}
	}
	return zap.NewAtomicLevelAt(level)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
