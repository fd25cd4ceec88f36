package main

import (
	"fmt"

	"github.com/hadi77ir/go-logging"
	"go.uber.org/zap"
)

// zapLogger routes the library's go-logging calls into the CLI's zap logger.
type zapLogger struct {
	base   *zap.Logger
	logger *zap.Logger
}

var _ logging.Logger = &zapLogger{}

func newZapLogger(logger *zap.Logger) logging.Logger {
	return &zapLogger{base: logger, logger: logger}
}

// Log writes args as one message. Panic and trace levels become error and
// debug entries; exiting on panic is left to the log package.
func (l *zapLogger) Log(level logging.Level, args ...interface{}) {
	msg := fmt.Sprint(args...)
	switch level {
	case logging.PanicLevel, logging.ErrorLevel:
		l.logger.Error(msg)
	case logging.FatalLevel:
		l.logger.Fatal(msg)
	case logging.WarnLevel:
		l.logger.Warn(msg)
	case logging.InfoLevel:
		l.logger.Info(msg)
	default:
		l.logger.Debug(msg)
	}
}

func (l *zapLogger) WithFields(fields logging.Fields) logging.Logger {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}
	return &zapLogger{base: l.base, logger: l.logger.With(zfields...)}
}

// Logger returns the logger without any fields added by WithFields.
func (l *zapLogger) Logger() logging.Logger {
	return &zapLogger{base: l.base, logger: l.base}
}
