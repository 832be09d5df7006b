package models

// Check outcomes.
const (
	CheckPass = "PASS"
	CheckFail = "FAIL"
)

// GoverningNone is reported when no check fails.
const GoverningNone = "none"

// Checks holds the outcome of each capacity check, in evaluation order.
type Checks struct {
	Deflection string `json:"deflection"`
	Bending    string `json:"bending"`
	Rod        string `json:"rod"`
	Anchor     string `json:"anchor"`
}

// Governing returns the name of the first failing check, or GoverningNone.
func (c Checks) Governing() string {
	switch {
	case c.Deflection == CheckFail:
		return "deflection"
	case c.Bending == CheckFail:
		return "bending"
	case c.Rod == CheckFail:
		return "rod"
	case c.Anchor == CheckFail:
		return "anchor"
	}
	return GoverningNone
}

// AllPass reports whether every check passed.
func (c Checks) AllPass() bool {
	return c.Governing() == GoverningNone
}

// LibraryUsed records which library parts fed a calculation.
type LibraryUsed struct {
	Profile               *string `json:"profile"`
	Washer                *string `json:"washer"`
	Anchor                *string `json:"anchor"`
	BearingAreaMultiplier float64 `json:"bearing_area_multiplier"`
}

// CheckResult is the output of a bracket capacity check. Per-tier maps are
// keyed by tier number starting at 1.
type CheckResult struct {
	Status          string          `json:"status"`
	GoverningCheck  string          `json:"governing_check"`
	TotalWeightKg   float64         `json:"total_weight_kg"`
	PerTierWeightKg map[int]float64 `json:"per_tier_weight_kg"`
	RodMinSize      string          `json:"rod_min_size"`
	Checks          Checks          `json:"checks"`
	Notes           []string        `json:"notes"`
	DeflectionMM    map[int]float64 `json:"deflection_mm"`
	MaxMomentKNm    map[int]float64 `json:"max_moment_knm"`
	LibraryUsed     LibraryUsed     `json:"library_used"`
}
