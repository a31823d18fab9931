package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"staffhub/config"
	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_TraceErrorSkipsRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_TraceSlowQuery(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	buf, l = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(true)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
