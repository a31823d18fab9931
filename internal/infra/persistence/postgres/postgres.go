package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"staffhub/config"
	"staffhub/internal/domain/lifecycle"
	"staffhub/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the staffhub database through go-lib. Nothing is dialed until fx
// starts: the start hook pings, migrates when database.migrate is set and
// launches the pool monitor.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	// Repositories map gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated to domain errors.
	db.Config.TranslateError = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	dbCfg := params.Config.Database
	if dbCfg == nil {
		dbCfg = &config.DatabaseConfig{}
	}
	monitor := newPoolMonitor(params.Logger, sqlDB, dbCfg.PoolMonitor)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if dbCfg.Migrate {
				if err := RunMigrations(sqlDB, params.Logger); err != nil {
					return err
				}
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// statsSource is the part of *sql.DB the pool monitor reads.
type statsSource interface {
	Stats() sql.DBStats
}

// poolMonitor samples pool stats and reports callers that waited for a connection.
type poolMonitor struct {
	logger        *slog.Logger
	source        statsSource
	interval      time.Duration
	warnThreshold time.Duration
}

func newPoolMonitor(logger *slog.Logger, source statsSource, cfg config.PoolMonitorConfig) *poolMonitor {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	warnThreshold := cfg.WarnThreshold
	if warnThreshold <= 0 {
		warnThreshold = 50 * time.Millisecond
	}

	return &poolMonitor{
		logger:        logger,
		source:        source,
		interval:      interval,
		warnThreshold: warnThreshold,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.source == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.source.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.source.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits accumulated between two samples. Nothing is logged
// when no caller waited.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	message := "Postgres pool wait observed"
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
		message = "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, message,
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
