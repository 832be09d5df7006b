// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

type auditService struct {
	revisions store.RevisionRepository
	pdfs      store.PDFStore
	logger    *logger.Logger
}

func NewAuditService(revisions store.RevisionRepository, pdfs store.PDFStore, logger *logger.Logger) AuditService {
	return &auditService{revisions: revisions, pdfs: pdfs, logger: logger}
}

// AuditPDFs compares every stored report with the digest recorded on its
// revision. Each missing or modified file is logged; other read errors
// abort the pass.
func (a *auditService) AuditPDFs(ctx context.Context) (models.AuditSummary, error) {
	stored, err := a.revisions.ListStoredPDFs(ctx)
	if err != nil {
		return models.AuditSummary{}, fmt.Errorf("error listing stored reports: %w", err)
	}

	var summary models.AuditSummary
	for _, pdf := range stored {
		if err = ctx.Err(); err != nil {
			return summary, err
		}

		sum, err := a.digest(ctx, pdf.Path)
		summary.Checked++
		switch {
		case errors.Is(err, store.ErrPDFNotFound):
			summary.Missing++
			a.logger.Error().
				Int64("revision_id", pdf.RevisionID).
				Str("project_id", pdf.ProjectID).
				Str("path", pdf.Path).
				Msg("stored report is missing")
		case err != nil:
			return summary, err
		case sum != pdf.SHA256:
			summary.Modified++
			a.logger.Error().
				Int64("revision_id", pdf.RevisionID).
				Str("project_id", pdf.ProjectID).
				Str("path", pdf.Path).
				Str("expected_sha256", pdf.SHA256).
				Str("actual_sha256", sum).
				Msg("stored report was modified")
		}
	}

	return summary, nil
}

func (a *auditService) digest(ctx context.Context, path string) (string, error) {
	rc, err := a.pdfs.Open(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	sum, err := utils.SHA256HexReader(rc)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return sum, nil
}
