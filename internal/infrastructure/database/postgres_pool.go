package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ConnectPostgres opens a pgx pool and pings it, retrying with exponential
// backoff while the database starts up.
func ConnectPostgres(ctx context.Context, url string, maxConns int32, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid DATABASE_URL")
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	const attempts = 5
	delay := time.Second
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				log.Info().Str("host", poolCfg.ConnConfig.Host).Int("attempt", attempt).Msg("connected to postgres")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("postgres not ready")
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return nil, errors.Wrapf(lastErr, "connect to postgres after %d attempts", attempts)
}
