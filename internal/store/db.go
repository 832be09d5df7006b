// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/migrations"
)

// DB wraps *sql.DB with the SQL dialect it speaks. Repositories build their
// statements through Builder so placeholders match the driver.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. dialect is one of
// [migrations.DialectPostgres] or [migrations.DialectSQLite].
func NewDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Connect opens the database selected by cfg.URL, applies the pool limits
// and pings it.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn, err := cfg.Driver()
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverPostgres:
		return connectPostgres(ctx, dsn, cfg, log)
	case config.DriverSQLite:
		return connectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func connectPostgres(ctx context.Context, dsn string, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "connectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "connectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "connectPostgres").Msg("connected to postgres successfully")

	return NewDB(conn, migrations.DialectPostgres, log), nil
}

func connectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error creating database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serialises writers; one connection avoids SQLITE_BUSY on
	// concurrent revision inserts.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "connectSQLite").Str("path", path).Msg("connected to sqlite successfully")

	return NewDB(conn, migrations.DialectSQLite, log), nil
}

func createLocalDBFileIfNotExists(path string) error {
	if path == ":memory:" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Dialect reports the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Builder returns a squirrel statement builder using the placeholder
// format of the dialect.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Migrate applies the embedded schema migrations for the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Classify reports whether err returned by this database is worth retrying.
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// markRetryable wraps err with [ErrTransientFailure] when the driver
// classifies it as [Retryable].
func (db *DB) markRetryable(err error) error {
	if err == nil || db.Classify(err) != Retryable {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransientFailure, err)
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on any error.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
