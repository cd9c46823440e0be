// Package db handles database connection pooling and schema migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newsradar/internal/pkg/config"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a database connection pool from DATABASE_URL
// and the DB_* pool variables, then verifies connectivity with a ping.
// Startup cannot proceed without a database, so failures are fatal.
func Open() *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal(err)
	}

	cfg := poolConfigFromEnv()
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	slog.Info("database connection established successfully")
	return pool
}

// poolConfigFromEnv reads the pool tuning variables. Each loader falls back
// to the default on a bad value and surfaces it as a startup warning.
func poolConfigFromEnv() ConnectionConfig {
	defaults := DefaultConnectionConfig()

	positiveInt := func(v int) error {
		if v <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	}
	positiveDuration := func(v time.Duration) error {
		if v <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	}

	maxOpen := config.LoadEnvInt("DB_MAX_OPEN_CONNS", defaults.MaxOpenConns, positiveInt)
	maxIdle := config.LoadEnvInt("DB_MAX_IDLE_CONNS", defaults.MaxIdleConns, positiveInt)
	lifetime := config.LoadEnvDuration("DB_CONN_MAX_LIFETIME", defaults.ConnMaxLifetime, positiveDuration)
	idleTime := config.LoadEnvDuration("DB_CONN_MAX_IDLE_TIME", defaults.ConnMaxIdleTime, positiveDuration)

	for _, result := range []config.ConfigLoadResult{maxOpen, maxIdle, lifetime, idleTime} {
		for _, warning := range result.Warnings {
			slog.Warn("database pool setting rejected", slog.String("detail", warning))
		}
	}

	return ConnectionConfig{
		MaxOpenConns:    maxOpen.Value.(int),
		MaxIdleConns:    maxIdle.Value.(int),
		ConnMaxLifetime: lifetime.Value.(time.Duration),
		ConnMaxIdleTime: idleTime.Value.(time.Duration),
	}
}
