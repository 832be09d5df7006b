// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/models"
)

// libraryRepository is the SQL implementation of [LibraryRepository]. Each
// kind has its own table described by a [libraryTable].
type libraryRepository struct {
	*DB
	logger *logger.Logger
}

// NewLibraryRepository constructs a [LibraryRepository] backed by db.
func NewLibraryRepository(db *DB, logger *logger.Logger) LibraryRepository {
	logger.Debug().Msg("creating library repository")
	return &libraryRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *libraryRepository) InsertProfiles(ctx context.Context, items []models.Profile) (int, error) {
	return insertRows(ctx, l.DB, profilesTable, items)
}

func (l *libraryRepository) InsertRods(ctx context.Context, items []models.Rod) (int, error) {
	return insertRows(ctx, l.DB, rodsTable, items)
}

func (l *libraryRepository) InsertWashers(ctx context.Context, items []models.Washer) (int, error) {
	return insertRows(ctx, l.DB, washersTable, items)
}

func (l *libraryRepository) InsertAnchors(ctx context.Context, items []models.Anchor) (int, error) {
	return insertRows(ctx, l.DB, anchorsTable, items)
}

func (l *libraryRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return listRows(ctx, l.DB, profilesTable)
}

func (l *libraryRepository) ListRods(ctx context.Context) ([]models.Rod, error) {
	return listRows(ctx, l.DB, rodsTable)
}

func (l *libraryRepository) ListWashers(ctx context.Context) ([]models.Washer, error) {
	return listRows(ctx, l.DB, washersTable)
}

func (l *libraryRepository) ListAnchors(ctx context.Context) ([]models.Anchor, error) {
	return listRows(ctx, l.DB, anchorsTable)
}

// GetItem returns the row of kind with the given id as *models.Profile,
// *models.Rod, *models.Washer or *models.Anchor.
func (l *libraryRepository) GetItem(ctx context.Context, kind models.LibraryKind, id int64) (any, error) {
	where := sq.Eq{"id": id}

	var (
		item any
		err  error
	)
	switch kind {
	case models.LibraryKindProfiles:
		item, err = selectOne(ctx, l.DB, profilesTable, where)
	case models.LibraryKindRods:
		item, err = selectOne(ctx, l.DB, rodsTable, where)
	case models.LibraryKindWashers:
		item, err = selectOne(ctx, l.DB, washersTable, where)
	case models.LibraryKindAnchors:
		item, err = selectOne(ctx, l.DB, anchorsTable, where)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibraryKind, kind)
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

// FindProfile returns the first profile imported under key, or nil.
func (l *libraryRepository) FindProfile(ctx context.Context, key models.LibraryKey) (*models.Profile, error) {
	return findByKey(ctx, l.DB, profilesTable, key)
}

// FindWasher returns the first washer imported under key, or nil.
func (l *libraryRepository) FindWasher(ctx context.Context, key models.LibraryKey) (*models.Washer, error) {
	return findByKey(ctx, l.DB, washersTable, key)
}

// FindAnchor returns the first anchor imported under key, or nil.
func (l *libraryRepository) FindAnchor(ctx context.Context, key models.LibraryKey) (*models.Anchor, error) {
	return findByKey(ctx, l.DB, anchorsTable, key)
}

// insertRows stores items in a single transaction. Either every row is
// inserted or none is.
func insertRows[T any](ctx context.Context, db *DB, table libraryTable[T], items []T) (int, error) {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return 0, nil
	}

	err := db.inTx(ctx, func(tx *sql.Tx) error {
		for i, item := range items {
			query, args, err := db.Builder().
				Insert(table.name).
				Columns(table.columns...).
				Values(table.values(item)...).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "insertRows").
					Str("table", table.name).
					Int("iteration", i).
					Msg("failed to insert library row")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

func listRows[T any](ctx context.Context, db *DB, table libraryTable[T]) ([]T, error) {
	query, args, err := db.Builder().
		Select(table.selectColumns()...).
		From(table.name).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "listRows").
			Str("table", table.name).
			Msg("failed to execute query for listing library rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 50)
	for rows.Next() {
		var item T
		if err = rows.Scan(table.scan(&item)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// selectOne returns the lowest-id row matching where or
// [ErrLibraryItemNotFound].
func selectOne[T any](ctx context.Context, db *DB, table libraryTable[T], where sq.Sqlizer) (*T, error) {
	query, args, err := db.Builder().
		Select(table.selectColumns()...).
		From(table.name).
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item := new(T)
	err = db.QueryRowContext(ctx, query, args...).Scan(table.scan(item)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLibraryItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "selectOne").
			Str("table", table.name).
			Msg("failed to select library row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func findByKey[T any](ctx context.Context, db *DB, table libraryTable[T], key models.LibraryKey) (*T, error) {
	item, err := selectOne(ctx, db, table, sq.Eq{
		"manufacturer_id": key.ManufacturerID,
		table.keyColumn:   key.PartID,
	})
	if errors.Is(err, ErrLibraryItemNotFound) {
		return nil, nil
	}
	return item, err
}
