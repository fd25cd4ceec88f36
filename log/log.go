// Package log holds the logger used by the sndprobe library packages.
// Nothing is logged until an application installs a logger with SetDefaultLogger.
package log

import (
	"fmt"
	"os"

	"github.com/hadi77ir/go-logging"
)

var defaultLogger logging.Logger

func SetDefaultLogger(logger logging.Logger) {
	defaultLogger = logger
}

func DefaultLogger() logging.Logger {
	return defaultLogger
}

func Log(level logging.Level, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Log(level, args...)
	}
	if level == logging.PanicLevel {
		if defaultLogger == nil {
			fmt.Fprintln(os.Stderr, args...)
		}
		os.Exit(1)
	}
}

// Logf formats its arguments only when a logger is installed or the level is fatal.
func Logf(level logging.Level, format string, args ...interface{}) {
	if defaultLogger == nil && level != logging.PanicLevel {
		return
	}
	Log(level, fmt.Sprintf(format, args...))
}
