package service

import (
	"context"

	"github.com/mep-tools/bracket-tool/internal/validators"
	"github.com/mep-tools/bracket-tool/models"
)

// ProjectValidationService validates snapshots before they reach the
// wrapped ProjectService. Reads pass straight through.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService(validator validators.Validator) ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validator,
	}
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, ownerID int64, snapshot models.ProjectSnapshot) (models.Project, error) {
	if err := v.validator.Validate(ctx, snapshot); err != nil {
		return models.Project{}, err
	}
	return v.inner.CreateProject(ctx, ownerID, snapshot)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, ownerID int64, projectID string, snapshot models.ProjectSnapshot) (models.Project, error) {
	if err := v.validator.Validate(ctx, snapshot); err != nil {
		return models.Project{}, err
	}
	return v.inner.UpdateProject(ctx, ownerID, projectID, snapshot)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	return v.inner.GetProject(ctx, ownerID, projectID)
}

func (v *ProjectValidationService) ListProjects(ctx context.Context, ownerID int64) ([]models.ProjectListItem, error) {
	return v.inner.ListProjects(ctx, ownerID)
}

func (v *ProjectValidationService) CheckProject(ctx context.Context, ownerID int64, projectID string) (models.CheckResult, error) {
	return v.inner.CheckProject(ctx, ownerID, projectID)
}

func (v *ProjectValidationService) Wrap(wrapped ProjectService) ProjectService {
	v.inner = wrapped
	return v
}
