package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger for development, or a JSON logger when
// asJSON is set.
func newLogger(asJSON, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if asJSON {
		encoding = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      !asJSON,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
