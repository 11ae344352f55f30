package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newGormTestLogger(level gormlogger.LogLevel, observeAt zapcore.Level) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(observeAt)
	return NewGormLogger(zap.New(core), level), recorded
}

func TestNewGormLogger(t *testing.T) {
	gormLog, _ := newGormTestLogger(gormlogger.Info, zapcore.InfoLevel)

	assert.NotNil(t, gormLog)
	assert.Equal(t, gormlogger.Info, gormLog.logLevel)
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newGormTestLogger(gormlogger.Info, zapcore.InfoLevel)

	newLogger := gormLog.LogMode(gormlogger.Warn)

	// Original should be unchanged
	assert.Equal(t, gormlogger.Info, gormLog.logLevel)

	newGormLog, ok := newLogger.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, newGormLog.logLevel)
}

func TestGormLogger_Info(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Info, zapcore.InfoLevel)

	gormLog.Info(context.Background(), "test message %s", "value")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "test message value")
}

func TestGormLogger_Info_Suppressed(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Silent, zapcore.InfoLevel)

	gormLog.Info(context.Background(), "test message")

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Warn(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Warn, zapcore.WarnLevel)

	gormLog.Warn(context.Background(), "warning message %d", 42)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "warning message 42")
	assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
}

func TestGormLogger_Error(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Error, zapcore.ErrorLevel)

	gormLog.Error(context.Background(), "error message")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
}

func TestGormLogger_Trace_Error(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Error, zapcore.ErrorLevel)

	fc := func() (string, int64) {
		return "SELECT * FROM enrollments", 0
	}

	gormLog.Trace(context.Background(), time.Now(), fc, errors.New("connection reset"))

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SQL Error")
}

func TestGormLogger_Trace_RecordNotFoundIgnored(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Error, zapcore.ErrorLevel)

	fc := func() (string, int64) {
		return "SELECT * FROM enrollments WHERE id = ?", 0
	}

	gormLog.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Trace_SlowQuery(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Warn, zapcore.WarnLevel)

	begin := time.Now().Add(-1 * time.Second)
	fc := func() (string, int64) {
		return "SELECT * FROM enrollments", 10
	}

	gormLog.Trace(context.Background(), begin, fc, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SLOW SQL")
}

func TestGormLogger_Trace_NormalQuery(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Info, zapcore.DebugLevel)

	fc := func() (string, int64) {
		return "SELECT * FROM enrollments", 5
	}

	gormLog.Trace(context.Background(), time.Now(), fc, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SQL Query")
}

func TestGormLogger_Trace_Silent(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Silent, zapcore.DebugLevel)

	fc := func() (string, int64) {
		return "SELECT * FROM enrollments", 5
	}

	gormLog.Trace(context.Background(), time.Now(), fc, nil)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Trace_WithRequestID(t *testing.T) {
	gormLog, recorded := newGormTestLogger(gormlogger.Info, zapcore.DebugLevel)

	ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "test-req-id")

	fc := func() (string, int64) {
		return "SELECT * FROM enrollments", 5
	}

	gormLog.Trace(ctx, time.Now(), fc, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "test-req-id", logs[0].ContextMap()["request_id"])
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterface(t *testing.T) {
	gormLog, _ := newGormTestLogger(gormlogger.Info, zapcore.InfoLevel)

	var _ gormlogger.Interface = gormLog
}
