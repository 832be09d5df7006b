// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

// Package report renders the Golden Thread PDF issued for a project
// revision.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mep-tools/bracket-tool/models"
)

// Disclaimer is printed at the foot of every report.
const Disclaimer = "The beam model used for deflection and bending is a placeholder " +
	"(simply supported span, central point load). Results are indicative only " +
	"and must be verified by a competent engineer against the manufacturer's " +
	"published data before installation."

// Document is everything printed on one report.
type Document struct {
	ProjectID        string
	ProjectName      string
	BracketReference string
	RevisionCode     string
	GeneratedAt      time.Time
	GeneratedBy      string
	ToolVersion      string

	Snapshot models.ProjectSnapshot
	Results  models.CheckResult
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName builds "{reference}_{revision}_{project}.pdf". Characters that
// are unsafe in file names are replaced by underscores.
func FileName(bracketReference, revisionCode, projectID string) string {
	return fmt.Sprintf("%s_%s_%s.pdf",
		sanitize(bracketReference, models.DefaultBracketReference),
		sanitize(revisionCode, "P00"),
		sanitize(projectID, "project"),
	)
}

func sanitize(s, fallback string) string {
	s = strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(s), "_"), "._")
	if s == "" {
		return fallback
	}
	return s
}
