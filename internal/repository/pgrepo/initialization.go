package pgrepo

import (
	"context"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// Connect устанавливает соединение с postgres (с повторными попытками, пока БД поднимается)
// и применяет миграции. Возвращает готовый к работе пул соединений.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint

	for {
		conn, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			if migrateErr := postgresMigrate(migrationsDir, dsn); migrateErr != nil {
				conn.Close()
				return nil, migrateErr
			}
			return conn, nil
		}

		attempts++
		if attempts >= connectMaxAttempts {
			return nil, errors.Wrapf(connErr, "init postgres connection after %d attempts", attempts)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", attempts).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(connectRetryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, errors.Wrap(confErr, "parse postgres config")
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, errors.Wrap(poolErr, "create pool")
	}

	// Проверяем что соединение живое.
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Wrap(pingErr, "ping postgres")
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return errors.Wrap(mErr, "create migrate instance")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate schema")
	}
	return nil
}
