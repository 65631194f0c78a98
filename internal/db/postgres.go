package db

import (
	"context"
	"errors"
	"time"

	"trailviewer/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDatabase is returned when no Postgres URL is configured.
var ErrNoDatabase = errors.New("postgres url not configured")

var (
	newPoolFn  = pgxpool.New
	pingPoolFn = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
)

func ConnectPostgres(cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.PostgresURL == "" {
		return nil, ErrNoDatabase
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := newPoolFn(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	if err := pingPoolFn(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
