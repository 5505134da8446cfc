package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PoolOptions bound the connection pool and the startup retry loop.
type PoolOptions struct {
	MinConns   int32
	MaxConns   int32
	RetryCount int
	RetryDelay time.Duration
}

// Connect opens a bounded pgx pool and verifies connectivity with a bounded
// retry loop. Retrying happens only here at startup; request-path queries are
// single-shot.
func Connect(ctx context.Context, url string, opts PoolOptions, logger *logrus.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MinConns = opts.MinConns
	cfg.MaxConns = opts.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			return pool, nil
		}
		if attempt >= opts.RetryCount {
			pool.Close()
			return nil, fmt.Errorf("ping database after %d attempts: %w", attempt, err)
		}
		logger.Warnf("database not ready (%v), retrying in %s (%d/%d)", err, opts.RetryDelay, attempt, opts.RetryCount)
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
}
