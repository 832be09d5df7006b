package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/models"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		code      string
		project   string
		want      string
	}{
		{"plain", "BKT001", "P01", "abc", "BKT001_P01_abc.pdf"},
		{"spaces and slashes", "Level 2/Riser A", "P02", "abc", "Level_2_Riser_A_P02_abc.pdf"},
		{"path traversal", "../../etc", "P03", "abc", "etc_P03_abc.pdf"},
		{"empty reference", "   ", "P04", "abc", "BKT001_P04_abc.pdf"},
		{"unicode", "Bürostraße", "P05", "abc", "B_rostra_e_P05_abc.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.reference, tt.code, tt.project))
		})
	}
}

func testDocument() Document {
	profile := "ACME:P41"
	snapshot := models.NewProjectSnapshot()
	snapshot.Name = "Plant room – north"
	snapshot.Bracket.StrutProfileID = &profile
	snapshot.Services = []models.ServiceItem{
		{ServiceType: "pipe", Tier: 1, WeightKgPerM: 12.5, SpacingMM: 300, Notes: "LTHW flow 54mm"},
		{ServiceType: "tray", Tier: 3, WeightKgPerM: 6},
	}

	return Document{
		ProjectID:        "3f1c9d6e",
		ProjectName:      snapshot.Name,
		BracketReference: snapshot.BracketReference,
		RevisionCode:     "P01",
		GeneratedAt:      time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		GeneratedBy:      "eng@example.com",
		ToolVersion:      "0.1.0",
		Snapshot:         snapshot,
		Results: models.CheckResult{
			Status:          models.CheckFail,
			GoverningCheck:  "bending",
			TotalWeightKg:   11.1,
			PerTierWeightKg: map[int]float64{1: 7.5, 2: 0, 3: 3.6},
			RodMinSize:      "M8",
			Checks:          models.Checks{Deflection: "PASS", Bending: "FAIL", Rod: "PASS", Anchor: "PASS"},
			Notes:           []string{"Tier 1: bending exceeds allowable (placeholder)."},
			DeflectionMM:    map[int]float64{1: 0, 2: 0, 3: 0},
			MaxMomentKNm:    map[int]float64{1: 0.028, 2: 0, 3: 0.013},
			LibraryUsed:     models.LibraryUsed{Profile: &profile, BearingAreaMultiplier: 1},
		},
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	out, err := NewRenderer().Render(testDocument())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must start with a PDF header")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRender_IsDeterministicForSameInput(t *testing.T) {
	r := NewRenderer()

	first, err := r.Render(testDocument())
	require.NoError(t, err)
	second, err := r.Render(testDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_LongServiceListPaginates(t *testing.T) {
	doc := testDocument()
	for i := 0; i < 120; i++ {
		doc.Snapshot.Services = append(doc.Snapshot.Services, models.ServiceItem{ServiceType: "duct", Tier: 2, WeightKgPerM: 1})
	}

	out, err := NewRenderer().Render(doc)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, bytes.Count(out, []byte("/Type /Page\n")), 2)
}
