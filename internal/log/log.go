// Package log provides the shared zap logger for labelmaker.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger. Without debug only warnings
// and errors reach stderr, so command output stays readable.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.Sampling = nil
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapLogger, err = cfg.Build(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	Set(zapLogger)
	return nil
}

// Set replaces the package-level logger.
func Set(l *zap.Logger) {
	log = l.Sugar()
}

func sugared() *zap.SugaredLogger {
	if log == nil {
		Set(zap.NewNop())
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugw(msg string, keysAndValues ...any) {
	sugared().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	sugared().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...any) {
	sugared().Warnf(template, args...)
}

func Errorw(msg string, keysAndValues ...any) {
	sugared().Errorw(msg, keysAndValues...)
}
