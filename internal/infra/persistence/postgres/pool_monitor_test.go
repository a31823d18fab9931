package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"staffhub/config"

	"github.com/stretchr/testify/assert"
)

type fixedStats sql.DBStats

func (s fixedStats) Stats() sql.DBStats { return sql.DBStats(s) }

func newBufferedPoolMonitor(cfg config.PoolMonitorConfig) (*bytes.Buffer, *poolMonitor) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &buf, newPoolMonitor(logger, fixedStats{}, cfg)
}

func TestPoolMonitor_Defaults(t *testing.T) {
	_, m := newBufferedPoolMonitor(config.PoolMonitorConfig{})

	assert.Equal(t, 5*time.Second, m.interval)
	assert.Equal(t, 50*time.Millisecond, m.warnThreshold)
}

func TestPoolMonitor_Report(t *testing.T) {
	tests := []struct {
		name    string
		prev    sql.DBStats
		cur     sql.DBStats
		level   string
		message string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name:    "short wait is debug",
			prev:    sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond},
			level:   "level=DEBUG",
			message: "Postgres pool wait observed",
		},
		{
			name:    "wait above threshold warns",
			prev:    sql.DBStats{},
			cur:     sql.DBStats{WaitCount: 2, WaitDuration: 300 * time.Millisecond, MaxOpenConnections: 10},
			level:   "level=WARN",
			message: "Postgres pool wait detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, m := newBufferedPoolMonitor(config.PoolMonitorConfig{WarnThreshold: 100 * time.Millisecond})

			m.report(context.Background(), tt.prev, tt.cur)

			if tt.message == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "waitCountDelta=2")
		})
	}
}

func TestPoolMonitor_RunStopsOnCancel(t *testing.T) {
	_, m := newBufferedPoolMonitor(config.PoolMonitorConfig{Interval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool monitor did not stop after cancel")
	}
}
