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

const projectsTable = "projects"

// projectRepository is the SQL implementation of [ProjectRepository]. The
// snapshot lives in current_snapshot_json; name and bracket_reference are
// mirrored into their own columns for listing.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProject inserts project with both timestamps set to now.
func (p *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	snapshot, err := json.Marshal(project.Snapshot)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	now := time.Now().UTC()
	project.Name = project.Snapshot.Name
	project.BracketReference = project.Snapshot.BracketReference
	project.CreatedAt = now
	project.UpdatedAt = now

	query, args, err := p.Builder().
		Insert(projectsTable).
		Columns("id", "owner_user_id", "name", "bracket_reference", "current_snapshot_json", "created_at", "updated_at").
		Values(project.ID, project.OwnerUserID, project.Name, project.BracketReference, string(snapshot), now, now).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Str("project_id", project.ID).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return project, nil
}

// UpdateSnapshot replaces the stored snapshot of a project owned by
// project.OwnerUserID and bumps updated_at.
func (p *projectRepository) UpdateSnapshot(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	snapshot, err := json.Marshal(project.Snapshot)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := p.Builder().
		Update(projectsTable).
		Set("name", project.Snapshot.Name).
		Set("bracket_reference", project.Snapshot.BracketReference).
		Set("current_snapshot_json", string(snapshot)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": project.ID, "owner_user_id": project.OwnerUserID}).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.UpdateSnapshot").
			Str("project_id", project.ID).
			Msg("failed to update project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Project{}, ErrProjectNotFound
	}

	return p.GetProject(ctx, project.OwnerUserID, project.ID)
}

// GetProject returns the project when it exists and belongs to ownerID.
// Otherwise it returns [ErrProjectNotFound].
func (p *projectRepository) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.Builder().
		Select("id", "owner_user_id", "name", "bracket_reference", "current_snapshot_json", "created_at", "updated_at").
		From(projectsTable).
		Where(sq.Eq{"id": projectID, "owner_user_id": ownerID}).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		project  models.Project
		snapshot string
	)
	err = p.QueryRowContext(ctx, query, args...).Scan(
		&project.ID,
		&project.OwnerUserID,
		&project.Name,
		&project.BracketReference,
		&snapshot,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.GetProject").
			Str("project_id", projectID).
			Msg("failed to select project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(snapshot), &project.Snapshot); err != nil {
		log.Err(err).
			Str("func", "projectRepository.GetProject").
			Str("project_id", projectID).
			Msg("stored snapshot is not valid json")
		return models.Project{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return project, nil
}

// ListProjects returns ownerID's projects, most recently updated first.
func (p *projectRepository) ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.Builder().
		Select("id", "name", "bracket_reference", "updated_at").
		From(projectsTable).
		Where(sq.Eq{"owner_user_id": ownerID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.ListProjects").
			Int64("user_id", ownerID).
			Msg("failed to execute query for listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ProjectListItem, 0, 20)
	for rows.Next() {
		var item models.ProjectListItem
		if err = rows.Scan(&item.ID, &item.Name, &item.BracketReference, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
