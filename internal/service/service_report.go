// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mep-tools/bracket-tool/internal/calc"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/report"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

// maxRevisionAttempts bounds how often GenerateReport re-reads the revision
// count after another writer took the code it picked or the database
// reported a transient failure.
const maxRevisionAttempts = 5

// defaultRetryBackoff is multiplied by the attempt number before retrying
// a transient database failure.
const defaultRetryBackoff = 50 * time.Millisecond

type reportService struct {
	projects  store.ProjectRepository
	revisions store.RevisionRepository
	pdfs      store.PDFStore
	library   LibraryService
	renderer  PDFRenderer

	toolVersion  string
	now          func() time.Time
	retryBackoff time.Duration

	// locks serialises report generation per project within this process.
	// Other processes are kept apart by the unique revision code.
	locks sync.Map

	logger *logger.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(
	projects store.ProjectRepository,
	revisions store.RevisionRepository,
	pdfs store.PDFStore,
	library LibraryService,
	renderer PDFRenderer,
	toolVersion string,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		projects:     projects,
		revisions:    revisions,
		pdfs:         pdfs,
		library:      library,
		renderer:     renderer,
		toolVersion:  toolVersion,
		now:          func() time.Time { return time.Now().UTC() },
		retryBackoff: defaultRetryBackoff,
		logger:       logger,
	}
}

func (s *reportService) lock(projectID string) func() {
	mu, _ := s.locks.LoadOrStore(projectID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// GenerateReport checks the current snapshot, renders it and records the
// result as revision count+1. The PDF is written while the revision insert
// is still uncommitted, so a revision row never points at a missing file.
func (s *reportService) GenerateReport(ctx context.Context, user models.User, projectID string) (models.Report, error) {
	log := logger.FromContext(ctx)

	project, err := s.projects.GetProject(ctx, user.UserID, projectID)
	if err != nil {
		return models.Report{}, err
	}

	lib, err := s.library.Resolve(ctx, project.Snapshot.Bracket)
	if err != nil {
		return models.Report{}, fmt.Errorf("error resolving library: %w", err)
	}
	results := calc.Run(project.Snapshot, lib)

	unlock := s.lock(project.ID)
	defer unlock()

	var lastErr error
	for attempt := 1; attempt <= maxRevisionAttempts; attempt++ {
		count, err := s.revisions.CountRevisions(ctx, project.ID)
		if err != nil {
			if s.backoff(ctx, err, attempt) {
				lastErr = err
				continue
			}
			return models.Report{}, fmt.Errorf("error counting revisions: %w", err)
		}

		rep, err := s.issue(ctx, user, project, results, models.RevisionCode(count+1))
		if errors.Is(err, store.ErrRevisionCodeTaken) {
			log.Warn().
				Str("project_id", project.ID).
				Int("attempt", attempt).
				Msg("revision code taken by a concurrent writer, retrying")
			lastErr = err
			continue
		}
		if err != nil {
			if s.backoff(ctx, err, attempt) {
				lastErr = err
				continue
			}
			return models.Report{}, err
		}

		log.Info().
			Str("project_id", project.ID).
			Str("revision_code", rep.Revision.RevisionCode).
			Str("status", results.Status).
			Str("sha256", rep.Revision.PDFSHA256).
			Msg("report issued")
		return rep, nil
	}

	return models.Report{}, fmt.Errorf("%w after %d attempts: %w", ErrRevisionRetries, maxRevisionAttempts, lastErr)
}

// backoff reports whether err is a transient database failure worth another
// attempt, and waits attempt*retryBackoff before returning true.
func (s *reportService) backoff(ctx context.Context, err error, attempt int) bool {
	if !errors.Is(err, store.ErrTransientFailure) {
		return false
	}

	logger.FromContext(ctx).Warn().Err(err).
		Int("attempt", attempt).
		Msg("transient database failure, retrying")

	timer := time.NewTimer(time.Duration(attempt) * s.retryBackoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *reportService) issue(ctx context.Context, user models.User, project models.Project, results models.CheckResult, code string) (models.Report, error) {
	content, err := s.renderer.Render(report.Document{
		ProjectID:        project.ID,
		ProjectName:      project.Snapshot.Name,
		BracketReference: project.Snapshot.BracketReference,
		RevisionCode:     code,
		GeneratedAt:      s.now(),
		GeneratedBy:      user.Email,
		ToolVersion:      s.toolVersion,
		Snapshot:         project.Snapshot,
		Results:          results,
	})
	if err != nil {
		return models.Report{}, fmt.Errorf("%w: %w", ErrRenderingReport, err)
	}

	fileName := report.FileName(project.Snapshot.BracketReference, code, project.ID)
	path, err := s.pdfs.Path(fileName)
	if err != nil {
		return models.Report{}, err
	}

	rev, err := s.revisions.CreateRevision(ctx, models.Revision{
		ProjectID:       project.ID,
		RevisionCode:    code,
		Snapshot:        project.Snapshot,
		Results:         results,
		PDFPath:         path,
		PDFSHA256:       utils.SHA256Hex(content),
		CreatedByUserID: user.UserID,
	}, func(ctx context.Context) error {
		if _, err := s.pdfs.Save(ctx, fileName, content); err != nil {
			return fmt.Errorf("error storing pdf: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Report{}, err
	}

	return models.Report{Revision: rev, FileName: fileName, Content: content}, nil
}

func (s *reportService) ListRevisions(ctx context.Context, ownerID int64, projectID string) ([]models.RevisionListItem, error) {
	if _, err := s.projects.GetProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.revisions.ListRevisions(ctx, projectID)
}

func (s *reportService) GetRevision(ctx context.Context, ownerID int64, projectID, code string) (models.Revision, error) {
	if _, err := s.projects.GetProject(ctx, ownerID, projectID); err != nil {
		return models.Revision{}, err
	}
	return s.revisions.GetRevision(ctx, projectID, code)
}

// OpenRevisionPDF returns the stored file and the name to offer it under.
func (s *reportService) OpenRevisionPDF(ctx context.Context, ownerID int64, projectID, code string) (io.ReadCloser, string, error) {
	rev, err := s.GetRevision(ctx, ownerID, projectID, code)
	if err != nil {
		return nil, "", err
	}

	rc, err := s.pdfs.Open(ctx, rev.PDFPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("project_id", projectID).
			Str("revision_code", code).
			Str("path", rev.PDFPath).
			Msg("stored report could not be opened")
		return nil, "", err
	}

	return rc, report.FileName(rev.Snapshot.BracketReference, rev.RevisionCode, rev.ProjectID), nil
}
