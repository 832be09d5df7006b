// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/models"
)

const revisionsTable = "project_revisions"

// revisionRepository is the SQL implementation of [RevisionRepository].
// Rows are insert-only; the schema rejects UPDATE and DELETE.
type revisionRepository struct {
	*DB
	logger *logger.Logger
}

// NewRevisionRepository constructs a [RevisionRepository] backed by db.
func NewRevisionRepository(db *DB, logger *logger.Logger) RevisionRepository {
	logger.Debug().Msg("creating revision repository")
	return &revisionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *revisionRepository) CountRevisions(ctx context.Context, projectID string) (int, error) {
	query, args, err := r.Builder().
		Select("COUNT(*)").
		From(revisionsTable).
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "revisionRepository.CountRevisions").
			Str("project_id", projectID).
			Msg("failed to count revisions")
		return 0, r.markRetryable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return count, nil
}

// CreateRevision holds the unique (project_id, revision_code) entry while
// persist runs, so a concurrent writer of the same code blocks or fails.
// A taken code yields [ErrRevisionCodeTaken]; transient driver failures are
// wrapped with [ErrTransientFailure].
func (r *revisionRepository) CreateRevision(ctx context.Context, rev models.Revision, persist func(ctx context.Context) error) (models.Revision, error) {
	log := logger.FromContext(ctx)

	snapshot, err := json.Marshal(rev.Snapshot)
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	results, err := json.Marshal(rev.Results)
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	rev.CreatedAt = time.Now().UTC()

	insert, insertArgs, err := r.Builder().
		Insert(revisionsTable).
		Columns("project_id", "revision_code", "snapshot_json", "results_json", "pdf_path", "pdf_sha256", "created_by_user_id", "created_at").
		Values(rev.ProjectID, rev.RevisionCode, string(snapshot), string(results), rev.PDFPath, rev.PDFSHA256, rev.CreatedByUserID, rev.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	touch, touchArgs, err := r.Builder().
		Update(projectsTable).
		Set("updated_at", rev.CreatedAt).
		Where(sq.Eq{"id": rev.ProjectID}).
		ToSql()
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insert, insertArgs...).Scan(&rev.ID); err != nil {
			if isUniqueViolation(err) {
				return ErrRevisionCodeTaken
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, touch, touchArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if persist != nil {
			return persist(ctx)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRevisionCodeTaken) {
			log.Err(err).
				Str("func", "revisionRepository.CreateRevision").
				Str("project_id", rev.ProjectID).
				Str("revision_code", rev.RevisionCode).
				Msg("failed to store revision")
		}
		return models.Revision{}, r.markRetryable(err)
	}

	return rev, nil
}

func (r *revisionRepository) ListRevisions(ctx context.Context, projectID string) ([]models.RevisionListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "revision_code", "results_json", "pdf_sha256", "created_by_user_id", "created_at").
		From(revisionsTable).
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "revisionRepository.ListRevisions").
			Str("project_id", projectID).
			Msg("failed to execute query for listing revisions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.RevisionListItem, 0, 10)
	for rows.Next() {
		var (
			item    models.RevisionListItem
			results string
		)
		if err = rows.Scan(&item.ID, &item.RevisionCode, &results, &item.PDFSHA256, &item.CreatedByUserID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var decoded models.CheckResult
		if err = json.Unmarshal([]byte(results), &decoded); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
		}
		item.Status = decoded.Status

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *revisionRepository) GetRevision(ctx context.Context, projectID, code string) (models.Revision, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("id", "project_id", "revision_code", "snapshot_json", "results_json", "pdf_path", "pdf_sha256", "created_by_user_id", "created_at").
		From(revisionsTable).
		Where(sq.Eq{"project_id": projectID, "revision_code": code}).
		ToSql()
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rev               models.Revision
		snapshot, results string
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&rev.ProjectID,
		&rev.RevisionCode,
		&snapshot,
		&results,
		&rev.PDFPath,
		&rev.PDFSHA256,
		&rev.CreatedByUserID,
		&rev.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Revision{}, ErrRevisionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "revisionRepository.GetRevision").
			Str("project_id", projectID).
			Str("revision_code", code).
			Msg("failed to select revision")
		return models.Revision{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(snapshot), &rev.Snapshot); err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}
	if err = json.Unmarshal([]byte(results), &rev.Results); err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return rev, nil
}

func (r *revisionRepository) ListStoredPDFs(ctx context.Context) ([]models.StoredPDF, error) {
	query, args, err := r.Builder().
		Select("id", "project_id", "pdf_path", "pdf_sha256").
		From(revisionsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pdfs []models.StoredPDF
	for rows.Next() {
		var pdf models.StoredPDF
		if err = rows.Scan(&pdf.RevisionID, &pdf.ProjectID, &pdf.Path, &pdf.SHA256); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		pdfs = append(pdfs, pdf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pdfs, nil
}
