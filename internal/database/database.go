package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool.Pool the service layers depend on
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool opens a pgx connection pool sized from the app configuration and
// verifies connectivity before returning.
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConnString, err)
	}

	if maxConns < 1 {
		maxConns = 1
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MinConns = minConnsFor(maxConns)
	poolCfg.MaxConnLifetime = maxLife
	poolCfg.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPingDatabase, err)
	}

	slog.Info(LogMsgConnected,
		"max_conns", poolCfg.MaxConns,
		"min_conns", poolCfg.MinConns,
		"max_idle", maxIdle,
		"max_lifetime", maxLife)

	return pool, nil
}

// minConnsFor keeps a fraction of the pool warm so venture bursts after a
// quiet stretch do not pay connection-setup latency.
func minConnsFor(maxConns int) int32 {
	warm := maxConns / WarmConnDivisor
	if warm < MinWarmConns {
		warm = MinWarmConns
	}
	if warm > maxConns {
		warm = maxConns
	}
	return int32(warm)
}
