// Package db provides database connectivity and schema migration for the visiontest application.
// It creates the shared pgx connection pool (built once at startup and injected into every store)
// and applies the versioned SQL migrations that are embedded into the binary.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"time"

	// `golang-migrate` applies versioned SQL migrations and records the applied version
	// in the `schema_migrations` table.
	"github.com/golang-migrate/migrate/v4"
	// Registers the `postgres://` database driver (backed by lib/pq) with golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// `iofs` lets golang-migrate read migrations from an `embed.FS`.
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// `pgxpool` is part of the `jackc/pgx` suite, providing a connection pool for PostgreSQL.
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/visiontest-go/apperror"
	"github.com/user/visiontest-go/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// NewPool builds the application connection pool from the configuration.
//
// pgxpool connects lazily, so an unreachable database does not fail here. The pool is
// pinged once and a failure is only logged: the process keeps serving and individual
// data operations fail until the database becomes reachable.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, apperror.NewConfigError("invalid DATABASE_URL", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute
	// Equivalent of pool_pre_ping: check idle connections periodically.
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating pgxpool", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Printf("Warning: database is not reachable yet: %v", err)
	}

	return pool, nil
}

// newMigrator wires the embedded migration files to the target database.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, apperror.NewMigrationError("failed to open embedded migrations", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, apperror.NewMigrationError("failed to create migrator", err)
	}
	return m, nil
}

// closeMigrator releases the source and database handles held by golang-migrate.
func closeMigrator(m *migrate.Migrate) {
	if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
		if srcErr != nil {
			log.Printf("Warning: error closing migration source: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("Warning: error closing migration database instance: %v", dbErr)
		}
	}
}

// RunMigrations applies every pending migration. `migrate.ErrNoChange` is not an error.
func RunMigrations(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}
	return nil
}

// RollbackMigrations reverts every applied migration, dropping both tables.
func RollbackMigrations(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to roll back migrations", err)
	}
	return nil
}

// InitSchema runs the migrations during server startup. Failure is logged as a
// warning and never stops the server.
func InitSchema(databaseURL string) {
	if err := RunMigrations(databaseURL); err != nil {
		log.Printf("Warning: Database initialization failed: %v", err)
		log.Println("Server will run but database operations may fail until credentials are fixed.")
		return
	}
	log.Println("Database schema is up to date.")
}

// Ping reports whether the pool can reach the database within the given timeout.
func Ping(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return apperror.NewDatabaseError(fmt.Sprintf("database ping failed after %s", timeout), err)
	}
	return nil
}
