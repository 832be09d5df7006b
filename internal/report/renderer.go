// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package report

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mep-tools/bracket-tool/models"
)

const (
	pageMarginMM = 15.0
	lineHeightMM = 6.0
	bodyFontSize = 10.0
	fontFamily   = "Helvetica"
)

// Renderer lays documents out on A4 with the core Helvetica font.
type Renderer struct{}

// NewRenderer returns a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the PDF bytes for doc.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(fmt.Sprintf("%s %s", doc.BracketReference, doc.RevisionCode), true)
	pdf.SetCreator("mep-bracket-tool "+doc.ToolVersion, true)

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 5, w.tr(fmt.Sprintf("%s %s  |  page %d", doc.BracketReference, doc.RevisionCode, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w.header(doc)
	w.bracket(doc.Snapshot.Bracket)
	w.services(doc.Snapshot.Services)
	w.results(doc.Results)
	w.notes(doc.Results.Notes)
	w.libraryUsed(doc.Results.LibraryUsed)
	w.disclaimer()

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("error laying out pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writer holds the page being drawn and the UTF-8 to cp1252 translator.
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *writer) heading(text string) {
	w.pdf.Ln(3)
	w.pdf.SetFont(fontFamily, "B", 12)
	w.pdf.CellFormat(0, 8, w.tr(text), "B", 1, "L", false, 0, "")
	w.pdf.Ln(1)
	w.pdf.SetFont(fontFamily, "", bodyFontSize)
}

func (w *writer) pair(label, value string) {
	w.pdf.SetFont(fontFamily, "B", bodyFontSize)
	w.pdf.CellFormat(55, lineHeightMM, w.tr(label), "", 0, "L", false, 0, "")
	w.pdf.SetFont(fontFamily, "", bodyFontSize)
	w.pdf.CellFormat(0, lineHeightMM, w.tr(value), "", 1, "L", false, 0, "")
}

func (w *writer) row(widths []float64, cells []string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont(fontFamily, style, 9)
	for i, c := range cells {
		w.pdf.CellFormat(widths[i], lineHeightMM, w.tr(c), "1", 0, "L", bold, 0, "")
	}
	w.pdf.Ln(-1)
}

func (w *writer) header(doc Document) {
	w.pdf.SetFont(fontFamily, "B", 18)
	w.pdf.CellFormat(0, 10, w.tr("Trapeze Bracket Design Report"), "", 1, "L", false, 0, "")
	w.pdf.SetFont(fontFamily, "", bodyFontSize)
	w.pdf.Ln(2)

	w.pair("Project", doc.ProjectName)
	w.pair("Project ID", doc.ProjectID)
	w.pair("Bracket reference", doc.BracketReference)
	w.pair("Revision", doc.RevisionCode)
	w.pair("Generated", doc.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	if doc.GeneratedBy != "" {
		w.pair("Issued by", doc.GeneratedBy)
	}
	w.pair("Tool version", doc.ToolVersion)
}

func (w *writer) bracket(b models.BracketConfig) {
	w.heading("Bracket configuration")
	w.pair("Bracket spacing", fmt.Sprintf("%d mm", b.SpacingMM))
	w.pair("Overall width", fmt.Sprintf("%d mm", b.OverallWidthMM))
	w.pair("Tiers", strconv.Itoa(b.TierCount))
	w.pair("Tier spacing", fmt.Sprintf("%d mm", b.TierSpacingMM))
	w.pair("Drop rod", b.DropRodSize)
	w.pair("Strut profile", orDash(b.StrutProfileID))
	w.pair("Washer", orDash(b.WasherID))
	w.pair("Anchor", orDash(b.AnchorID))
}

func (w *writer) services(items []models.ServiceItem) {
	w.heading("Services")
	if len(items) == 0 {
		w.pdf.CellFormat(0, lineHeightMM, w.tr("No services defined."), "", 1, "L", false, 0, "")
		return
	}

	widths := []float64{10, 30, 15, 28, 25, 72}
	w.pdf.SetFillColor(230, 230, 230)
	w.row(widths, []string{"#", "Type", "Tier", "Weight kg/m", "Spacing mm", "Notes"}, true)
	for i, s := range items {
		w.row(widths, []string{
			strconv.Itoa(i + 1),
			s.ServiceType,
			strconv.Itoa(s.Tier),
			formatFloat(s.WeightKgPerM, 2),
			strconv.Itoa(s.SpacingMM),
			truncate(s.Notes, 45),
		}, false)
	}
}

func (w *writer) results(res models.CheckResult) {
	w.heading("Results")
	w.pair("Overall status", res.Status)
	w.pair("Governing check", res.GoverningCheck)
	w.pair("Total weight", formatFloat(res.TotalWeightKg, 2)+" kg")
	w.pair("Minimum drop rod", res.RodMinSize)
	w.pair("Deflection", res.Checks.Deflection)
	w.pair("Bending", res.Checks.Bending)
	w.pair("Rod", res.Checks.Rod)
	w.pair("Anchor", res.Checks.Anchor)

	tiers := make([]int, 0, len(res.PerTierWeightKg))
	for tier := range res.PerTierWeightKg {
		tiers = append(tiers, tier)
	}
	slices.Sort(tiers)

	w.pdf.Ln(2)
	widths := []float64{20, 45, 45, 45}
	w.pdf.SetFillColor(230, 230, 230)
	w.row(widths, []string{"Tier", "Weight kg", "Moment kNm", "Deflection mm"}, true)
	for _, tier := range tiers {
		w.row(widths, []string{
			strconv.Itoa(tier),
			formatFloat(res.PerTierWeightKg[tier], 2),
			formatFloat(res.MaxMomentKNm[tier], 3),
			formatFloat(res.DeflectionMM[tier], 3),
		}, false)
	}
}

func (w *writer) notes(notes []string) {
	w.heading("Notes")
	if len(notes) == 0 {
		w.pdf.CellFormat(0, lineHeightMM, w.tr("None."), "", 1, "L", false, 0, "")
		return
	}
	for _, n := range notes {
		w.pdf.MultiCell(0, lineHeightMM, w.tr("- "+n), "", "L", false)
	}
}

func (w *writer) libraryUsed(lib models.LibraryUsed) {
	w.heading("Library used")
	w.pair("Profile", orDash(lib.Profile))
	w.pair("Washer", orDash(lib.Washer))
	w.pair("Anchor", orDash(lib.Anchor))
	w.pair("Bearing area multiplier", formatFloat(lib.BearingAreaMultiplier, 2))
}

func (w *writer) disclaimer() {
	w.pdf.Ln(4)
	w.pdf.SetFont(fontFamily, "I", 8)
	w.pdf.MultiCell(0, 4, w.tr(Disclaimer), "T", "L", false)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
