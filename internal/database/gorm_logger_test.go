package database

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
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level zapcore.Level) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewGormLogger(zap.New(core)), logs
}

func TestGormLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "routing_profiles"`, 3 }

	t.Run("error", func(t *testing.T) {
		l, logs := newObservedGormLogger(zapcore.DebugLevel)
		l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "gorm", entry.LoggerName)
		assert.Equal(t, `SELECT * FROM "routing_profiles"`, entry.ContextMap()["sql"])
		assert.Equal(t, int64(3), entry.ContextMap()["rows"])
	})

	t.Run("record not found is quiet", func(t *testing.T) {
		l, logs := newObservedGormLogger(zapcore.DebugLevel)
		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("slow query", func(t *testing.T) {
		l, logs := newObservedGormLogger(zapcore.DebugLevel)
		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
		assert.Equal(t, "slow query", logs.All()[0].Message)
	})

	t.Run("fast query only at info mode", func(t *testing.T) {
		l, logs := newObservedGormLogger(zapcore.DebugLevel)
		l.Trace(context.Background(), time.Now(), query, nil)
		assert.Zero(t, logs.Len())

		l.LogMode(gormlogger.Info).Trace(context.Background(), time.Now(), query, nil)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	})

	t.Run("silent", func(t *testing.T) {
		l, logs := newObservedGormLogger(zapcore.DebugLevel)
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_Messages(t *testing.T) {
	l, logs := newObservedGormLogger(zapcore.DebugLevel)
	ctx := context.Background()

	l.Info(ctx, "hidden %d", 1)
	l.Warn(ctx, "pool at %d%%", 90)
	l.Error(ctx, "lost connection to %s", "db")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "pool at 90%", logs.All()[0].Message)
	assert.Equal(t, "lost connection to db", logs.All()[1].Message)

	l.LogMode(gormlogger.Info).Info(ctx, "shown %d", 2)
	assert.Equal(t, "shown 2", logs.All()[2].Message)
}
