package calc

import (
	"fmt"

	"github.com/mep-tools/bracket-tool/models"
)

// TierWeights sums service weights per tier: weight_kg_per_m times the
// bracket's overall width in metres. Every tier from 1 to TierCount is
// present. Services on tiers outside that range are ignored.
func TierWeights(bracket models.BracketConfig, services []models.ServiceItem) map[int]float64 {
	tiers := make(map[int]float64, bracket.TierCount)
	for i := 1; i <= bracket.TierCount; i++ {
		tiers[i] = 0
	}

	rungLengthM := float64(bracket.OverallWidthMM) / 1000
	for _, s := range services {
		if _, ok := tiers[s.Tier]; !ok {
			continue
		}
		tiers[s.Tier] += s.WeightKgPerM * rungLengthM
	}
	return tiers
}

// Run checks a project snapshot against the resolved library selection.
func Run(snapshot models.ProjectSnapshot, lib models.LibrarySelection) models.CheckResult {
	bracket := snapshot.Bracket

	perTier := TierWeights(bracket, snapshot.Services)
	var total float64
	for tier := 1; tier <= bracket.TierCount; tier++ {
		total += perTier[tier]
	}

	bearingMultiplier := 1.0
	if lib.Washer != nil && lib.Washer.BearingAreaMultiplier != 0 {
		bearingMultiplier = lib.Washer.BearingAreaMultiplier
	}

	var e, ixx float64
	allowableMoment := DefaultAllowableMomentKNm
	deflectionRatio := DefaultDeflectionLimitRatio
	if p := lib.Profile; p != nil {
		e = p.ENPerMM2
		ixx = p.IxxMM4
		if p.AllowableMomentKNm != 0 {
			allowableMoment = p.AllowableMomentKNm
		}
		if p.DeflectionLimitRatio != 0 {
			deflectionRatio = p.DeflectionLimitRatio
		}
	}
	allowableMoment *= bearingMultiplier

	checks := models.Checks{
		Deflection: models.CheckPass,
		Bending:    models.CheckPass,
		Rod:        models.CheckPass,
		Anchor:     models.CheckPass,
	}
	notes := make([]string, 0)
	deflection := make(map[int]float64, bracket.TierCount)
	moment := make(map[int]float64, bracket.TierCount)
	perTierRounded := make(map[int]float64, bracket.TierCount)

	for tier := 1; tier <= bracket.TierCount; tier++ {
		res := SimpleBeam(float64(bracket.SpacingMM), perTier[tier], e, ixx, allowableMoment, deflectionRatio)

		deflection[tier] = round(res.DeflectionMM, 3)
		moment[tier] = round(res.MomentKNm, 3)
		perTierRounded[tier] = round(perTier[tier], 2)

		if !res.DeflectionPass {
			checks.Deflection = models.CheckFail
			notes = append(notes, fmt.Sprintf("Tier %d: deflection exceeds limit (placeholder beam model).", tier))
		}
		if !res.BendingPass {
			checks.Bending = models.CheckFail
			notes = append(notes, fmt.Sprintf("Tier %d: bending exceeds allowable (placeholder).", tier))
		}
	}

	rodSelected := ParseRodSize(bracket.DropRodSize)
	rodMin := rodSelected
	if len(lib.RodCapacities) > 0 {
		rodMin = RequiredRodSize(total*Gravity/2, lib.RodCapacities)
	}
	if RodRank(rodSelected) < RodRank(rodMin) {
		checks.Rod = models.CheckFail
		notes = append(notes, fmt.Sprintf("Selected rod %s below minimum %s (based on imported rod capacities).", rodSelected, rodMin))
	}

	status := models.CheckPass
	if !checks.AllPass() {
		status = models.CheckFail
	}

	used := models.LibraryUsed{BearingAreaMultiplier: bearingMultiplier}
	if lib.Profile != nil {
		used.Profile = &lib.Profile.ProfileID
	}
	if lib.Washer != nil {
		used.Washer = &lib.Washer.WasherID
	}
	if lib.Anchor != nil {
		used.Anchor = &lib.Anchor.AnchorID
	}

	return models.CheckResult{
		Status:          status,
		GoverningCheck:  checks.Governing(),
		TotalWeightKg:   round(total, 2),
		PerTierWeightKg: perTierRounded,
		RodMinSize:      rodMin,
		Checks:          checks,
		Notes:           notes,
		DeflectionMM:    deflection,
		MaxMomentKNm:    moment,
		LibraryUsed:     used,
	}
}
