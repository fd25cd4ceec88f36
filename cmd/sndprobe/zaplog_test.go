package main

import (
	"testing"

	"github.com/hadi77ir/go-logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return newZapLogger(zap.New(core)), logs
}

func TestZapLoggerLevels(t *testing.T) {
	l, logs := newObservedLogger()

	l.Log(logging.DebugLevel, "kernel applied ", 40000, " bytes")
	l.Log(logging.TraceLevel, "trace")
	l.Log(logging.InfoLevel, "info")
	l.Log(logging.WarnLevel, "warn")
	l.Log(logging.ErrorLevel, "error")
	l.Log(logging.PanicLevel, "panic")

	entries := logs.AllUntimed()
	require.Len(t, entries, 6)
	require.Equal(t, "kernel applied 40000 bytes", entries[0].Message)
	for i, level := range []zapcore.Level{
		zapcore.DebugLevel, zapcore.DebugLevel, zapcore.InfoLevel,
		zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.ErrorLevel,
	} {
		require.Equal(t, level, entries[i].Level)
	}
}

func TestZapLoggerFields(t *testing.T) {
	l, logs := newObservedLogger()

	withSeq := l.WithFields(logging.Fields{"seq": 7})
	withSeq.Log(logging.InfoLevel, "with fields")
	withSeq.Logger().Log(logging.InfoLevel, "without fields")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, map[string]interface{}{"seq": int64(7)}, entries[0].ContextMap())
	require.Empty(t, entries[1].ContextMap())
}
