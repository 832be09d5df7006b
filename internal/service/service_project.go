// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"fmt"

	"github.com/mep-tools/bracket-tool/internal/calc"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

type idGenerator interface {
	Generate() string
}

type projectService struct {
	repository store.ProjectRepository
	library    LibraryService
	ids        idGenerator
	logger     *logger.Logger
}

// NewProjectService constructs a ProjectService. Input is not validated
// here; wrap the result with NewProjectValidationService.
func NewProjectService(repository store.ProjectRepository, library LibraryService, logger *logger.Logger) ProjectService {
	return &projectService{
		repository: repository,
		library:    library,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (p *projectService) CreateProject(ctx context.Context, ownerID int64, snapshot models.ProjectSnapshot) (models.Project, error) {
	project, err := p.repository.CreateProject(ctx, models.Project{
		ID:          p.ids.Generate(),
		OwnerUserID: ownerID,
		Snapshot:    snapshot,
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("project_id", project.ID).
		Int64("user_id", ownerID).
		Msg("project created")

	return project, nil
}

func (p *projectService) UpdateProject(ctx context.Context, ownerID int64, projectID string, snapshot models.ProjectSnapshot) (models.Project, error) {
	return p.repository.UpdateSnapshot(ctx, models.Project{
		ID:          projectID,
		OwnerUserID: ownerID,
		Snapshot:    snapshot,
	})
}

func (p *projectService) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	return p.repository.GetProject(ctx, ownerID, projectID)
}

func (p *projectService) ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error) {
	return p.repository.ListProjects(ctx, ownerID)
}

// CheckProject runs the bracket checks on the stored snapshot.
func (p *projectService) CheckProject(ctx context.Context, ownerID int64, projectID string) (models.CheckResult, error) {
	project, err := p.repository.GetProject(ctx, ownerID, projectID)
	if err != nil {
		return models.CheckResult{}, err
	}

	lib, err := p.library.Resolve(ctx, project.Snapshot.Bracket)
	if err != nil {
		return models.CheckResult{}, fmt.Errorf("error resolving library: %w", err)
	}

	return calc.Run(project.Snapshot, lib), nil
}
