// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/mock"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/validators"
	"github.com/mep-tools/bracket-tool/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

// stubLibrary is a LibraryService that only resolves.
type stubLibrary struct {
	LibraryService
	sel models.LibrarySelection
	err error
}

func (s stubLibrary) Resolve(context.Context, models.BracketConfig) (models.LibrarySelection, error) {
	return s.sel, s.err
}

func testSnapshot() models.ProjectSnapshot {
	s := models.NewProjectSnapshot()
	s.Name = "Level 2 corridor"
	s.BracketReference = "BKT-L2"
	s.Services = []models.ServiceItem{
		{ServiceType: "pipe", Tier: 1, WeightKgPerM: 12.5, SpacingMM: 300},
		{ServiceType: "tray", Tier: 2, WeightKgPerM: 8, SpacingMM: 300},
	}
	return s
}

func newTestProjectService(t *testing.T, lib LibraryService) (ProjectService, *mock.MockProjectRepository) {
	t.Helper()
	repo := mock.NewMockProjectRepository(gomock.NewController(t))
	svc := &projectService{
		repository: repo,
		library:    lib,
		ids:        fixedID("3f1c9d6e-0000-4000-8000-000000000001"),
		logger:     logger.Nop(),
	}
	return NewProjectValidationService(validators.NewRequestValidator()).Wrap(svc), repo
}

// ─────────────────────────────────────────────
// CreateProject / UpdateProject
// ─────────────────────────────────────────────

func TestProjectService_Create_AssignsIDAndOwner(t *testing.T) {
	svc, repo := newTestProjectService(t, nil)

	repo.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Project) (models.Project, error) {
			assert.Equal(t, "3f1c9d6e-0000-4000-8000-000000000001", p.ID)
			assert.Equal(t, int64(5), p.OwnerUserID)
			assert.Equal(t, "Level 2 corridor", p.Snapshot.Name)
			return p, nil
		})

	project, err := svc.CreateProject(context.Background(), 5, testSnapshot())

	require.NoError(t, err)
	assert.Equal(t, "3f1c9d6e-0000-4000-8000-000000000001", project.ID)
}

func TestProjectService_Create_RejectsTierAboveCount(t *testing.T) {
	svc, _ := newTestProjectService(t, nil)

	snapshot := testSnapshot()
	snapshot.Services[0].Tier = 9

	_, err := svc.CreateProject(context.Background(), 5, snapshot)

	require.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrTierOutOfRange)
}

func TestProjectService_Create_RejectsUnknownRod(t *testing.T) {
	svc, _ := newTestProjectService(t, nil)

	snapshot := testSnapshot()
	snapshot.Bracket.DropRodSize = "M7"

	_, err := svc.CreateProject(context.Background(), 5, snapshot)

	require.ErrorIs(t, err, validators.ErrUnknownRodSize)
}

func TestProjectService_Update_PassesOwnerAndID(t *testing.T) {
	svc, repo := newTestProjectService(t, nil)

	repo.EXPECT().UpdateSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Project) (models.Project, error) {
			assert.Equal(t, "p-1", p.ID)
			assert.Equal(t, int64(2), p.OwnerUserID)
			return p, nil
		})

	_, err := svc.UpdateProject(context.Background(), 2, "p-1", testSnapshot())

	require.NoError(t, err)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc, repo := newTestProjectService(t, nil)

	repo.EXPECT().UpdateSnapshot(gomock.Any(), gomock.Any()).Return(models.Project{}, store.ErrProjectNotFound)

	_, err := svc.UpdateProject(context.Background(), 2, "p-1", testSnapshot())

	require.ErrorIs(t, err, store.ErrProjectNotFound)
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestProjectService_List(t *testing.T) {
	svc, repo := newTestProjectService(t, nil)

	items := []models.ProjectListItem{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().ListProjects(gomock.Any(), int64(3)).Return(items, nil)

	got, err := svc.ListProjects(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestProjectService_Get_OtherOwner(t *testing.T) {
	svc, repo := newTestProjectService(t, nil)

	repo.EXPECT().GetProject(gomock.Any(), int64(3), "p-9").Return(models.Project{}, store.ErrProjectNotFound)

	_, err := svc.GetProject(context.Background(), 3, "p-9")

	require.ErrorIs(t, err, store.ErrProjectNotFound)
}

// ─────────────────────────────────────────────
// CheckProject
// ─────────────────────────────────────────────

func TestProjectService_Check_RunsCalculation(t *testing.T) {
	lib := stubLibrary{sel: models.LibrarySelection{
		Profile: &models.Profile{ENPerMM2: 200000, IxxMM4: 1.2e6, AllowableMomentKNm: 5},
	}}
	svc, repo := newTestProjectService(t, lib)

	repo.EXPECT().GetProject(gomock.Any(), int64(1), "p-1").
		Return(models.Project{ID: "p-1", Snapshot: testSnapshot()}, nil)

	res, err := svc.CheckProject(context.Background(), 1, "p-1")

	require.NoError(t, err)
	assert.Equal(t, 12.3, res.TotalWeightKg)
	assert.Len(t, res.PerTierWeightKg, 3)
	assert.Equal(t, models.CheckPass, res.Checks.Anchor)
}

func TestProjectService_Check_ProjectMissing(t *testing.T) {
	svc, repo := newTestProjectService(t, stubLibrary{})

	repo.EXPECT().GetProject(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Project{}, store.ErrProjectNotFound)

	_, err := svc.CheckProject(context.Background(), 1, "nope")

	require.ErrorIs(t, err, store.ErrProjectNotFound)
}
