package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"aula/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts slog to GORM's logger.Interface so database traffic
// lands in the same structured stream as the rest of the service. Record
// not-found is a normal outcome for lookups and is never logged as an error.
type queryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{base: base, level: level}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &queryLogger{base: l.base, level: level}
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, slogLevel slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}

	l.base.LogAttrs(ctx, slogLevel, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.trace(ctx, slog.LevelError, "query failed", fc, elapsed, slog.String("error", err.Error()))
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "slow query", fc, elapsed, slog.Duration("threshold", slowQueryThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelInfo, "query", fc, elapsed)
	}
}

func (l *queryLogger) trace(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.base.LogAttrs(ctx, level, msg, attrs...)
}
