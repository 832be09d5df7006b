// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package models

import (
	"fmt"
	"time"
)

// RevisionCode formats the n-th revision code of a project: P01, P02, ...
func RevisionCode(n int) string {
	return fmt.Sprintf("P%02d", n)
}

// Revision is an immutable Golden Thread record: the design snapshot and
// check results captured when a PDF report was issued.
type Revision struct {
	ID              int64           `json:"id"`
	ProjectID       string          `json:"project_id"`
	RevisionCode    string          `json:"revision_code"`
	Snapshot        ProjectSnapshot `json:"snapshot"`
	Results         CheckResult     `json:"results"`
	PDFPath         string          `json:"pdf_path"`
	PDFSHA256       string          `json:"pdf_sha256"`
	CreatedByUserID int64           `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RevisionListItem is the summary row returned by the revision listing.
type RevisionListItem struct {
	ID              int64     `json:"id"`
	RevisionCode    string    `json:"revision_code"`
	Status          string    `json:"status"`
	PDFSHA256       string    `json:"pdf_sha256"`
	CreatedByUserID int64     `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// Report is a rendered PDF together with the revision it was recorded under.
type Report struct {
	Revision Revision
	FileName string
	Content  []byte
}

// StoredPDF identifies a revision PDF for integrity audits.
type StoredPDF struct {
	RevisionID int64
	ProjectID  string
	Path       string
	SHA256     string
}

// AuditSummary is the outcome of one integrity pass over stored reports.
type AuditSummary struct {
	Checked  int `json:"checked"`
	Missing  int `json:"missing"`
	Modified int `json:"modified"`
}

// PDFDownload is a report PDF as received by an API client.
type PDFDownload struct {
	FileName     string
	RevisionCode string
	SHA256       string
	Content      []byte
}
