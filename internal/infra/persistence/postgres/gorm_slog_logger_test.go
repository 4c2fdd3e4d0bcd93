package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"peeko/config"
	deliverycontext "peeko/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLoggerUnderTest(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantLevel string
		wantMsg   string
	}{
		{"failure", false, time.Millisecond, assert.AnError, `"level":"ERROR"`, "GORM query failed"},
		{"not found is expected", false, time.Millisecond, gorm.ErrRecordNotFound, `"level":"DEBUG"`, "GORM query rejected"},
		{"unique violation is expected", false, time.Millisecond, &pgconn.PgError{Code: pgUniqueViolation}, `"level":"DEBUG"`, "GORM query rejected"},
		{"slow query", false, time.Second, nil, `"level":"WARN"`, "GORM slow query"},
		{"fast query in debug", true, time.Millisecond, nil, `"level":"INFO"`, "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newLoggerUnderTest(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), tt.wantMsg)
		})
	}
}

func TestGormSlogLogger_FastQuerySilentOutsideDebug(t *testing.T) {
	l, buf := newLoggerUnderTest(false)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, buf := newLoggerUnderTest(false)
	ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("request_id", "req-7")))

	l.Trace(ctx, time.Now(), sqlFn, assert.AnError)

	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newLoggerUnderTest(false)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	silent.Error(context.Background(), "boom %d", 1)

	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "pool busy")
}
