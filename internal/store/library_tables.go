package store

import "github.com/mep-tools/bracket-tool/models"

// libraryTable describes how one library kind maps onto its table. columns
// excludes the id; scan returns destinations for id followed by columns.
type libraryTable[T any] struct {
	name      string
	keyColumn string
	columns   []string
	values    func(item T) []any
	scan      func(item *T) []any
}

var profilesTable = libraryTable[models.Profile]{
	name:      "lib_profiles",
	keyColumn: "profile_id",
	columns: []string{
		"manufacturer_id", "profile_id", "profile_name", "material_grade", "finish", "slotted",
		"width_mm", "height_mm", "thickness_mm", "area_mm2", "mass_kg_per_m", "e_n_per_mm2",
		"ixx_mm4", "iyy_mm4", "zxx_mm3", "zyy_mm3", "allowable_stress_n_per_mm2",
		"allowable_moment_knm", "deflection_limit_ratio", "notes", "source_ref",
	},
	values: func(p models.Profile) []any {
		return []any{
			p.ManufacturerID, p.ProfileID, p.ProfileName, p.MaterialGrade, p.Finish, p.Slotted,
			p.WidthMM, p.HeightMM, p.ThicknessMM, p.AreaMM2, p.MassKgPerM, p.ENPerMM2,
			p.IxxMM4, p.IyyMM4, p.ZxxMM3, p.ZyyMM3, p.AllowableStressNPerMM2,
			p.AllowableMomentKNm, p.DeflectionLimitRatio, p.Notes, p.SourceRef,
		}
	},
	scan: func(p *models.Profile) []any {
		return []any{
			&p.ID,
			&p.ManufacturerID, &p.ProfileID, &p.ProfileName, &p.MaterialGrade, &p.Finish, &p.Slotted,
			&p.WidthMM, &p.HeightMM, &p.ThicknessMM, &p.AreaMM2, &p.MassKgPerM, &p.ENPerMM2,
			&p.IxxMM4, &p.IyyMM4, &p.ZxxMM3, &p.ZyyMM3, &p.AllowableStressNPerMM2,
			&p.AllowableMomentKNm, &p.DeflectionLimitRatio, &p.Notes, &p.SourceRef,
		}
	},
}

var rodsTable = libraryTable[models.Rod]{
	name:      "lib_rods",
	keyColumn: "rod_id",
	columns: []string{
		"manufacturer_id", "rod_id", "rod_name", "thread_type", "diameter_label", "diameter_mm",
		"stress_area_mm2", "material_grade", "finish", "mass_kg_per_m", "allowable_tension_n",
		"allowable_shear_n", "fire_reduction_factor", "notes", "source_ref",
	},
	values: func(r models.Rod) []any {
		return []any{
			r.ManufacturerID, r.RodID, r.RodName, r.ThreadType, r.DiameterLabel, r.DiameterMM,
			r.StressAreaMM2, r.MaterialGrade, r.Finish, r.MassKgPerM, r.AllowableTensionN,
			r.AllowableShearN, r.FireReductionFactor, r.Notes, r.SourceRef,
		}
	},
	scan: func(r *models.Rod) []any {
		return []any{
			&r.ID,
			&r.ManufacturerID, &r.RodID, &r.RodName, &r.ThreadType, &r.DiameterLabel, &r.DiameterMM,
			&r.StressAreaMM2, &r.MaterialGrade, &r.Finish, &r.MassKgPerM, &r.AllowableTensionN,
			&r.AllowableShearN, &r.FireReductionFactor, &r.Notes, &r.SourceRef,
		}
	},
}

var washersTable = libraryTable[models.Washer]{
	name:      "lib_washers",
	keyColumn: "washer_id",
	columns: []string{
		"manufacturer_id", "washer_id", "washer_name", "washer_type", "outer_diameter_mm",
		"thickness_mm", "hole_diameter_mm", "shape", "material_grade", "finish",
		"bearing_area_multiplier", "slot_protection_multiplier", "notes", "source_ref",
	},
	values: func(w models.Washer) []any {
		return []any{
			w.ManufacturerID, w.WasherID, w.WasherName, w.WasherType, w.OuterDiameterMM,
			w.ThicknessMM, w.HoleDiameterMM, w.Shape, w.MaterialGrade, w.Finish,
			w.BearingAreaMultiplier, w.SlotProtectionMultiplier, w.Notes, w.SourceRef,
		}
	},
	scan: func(w *models.Washer) []any {
		return []any{
			&w.ID,
			&w.ManufacturerID, &w.WasherID, &w.WasherName, &w.WasherType, &w.OuterDiameterMM,
			&w.ThicknessMM, &w.HoleDiameterMM, &w.Shape, &w.MaterialGrade, &w.Finish,
			&w.BearingAreaMultiplier, &w.SlotProtectionMultiplier, &w.Notes, &w.SourceRef,
		}
	},
}

var anchorsTable = libraryTable[models.Anchor]{
	name:      "lib_anchors",
	keyColumn: "anchor_id",
	columns: []string{
		"manufacturer_id", "anchor_id", "anchor_name", "substrate_type", "diameter_mm",
		"embedment_mm", "allowable_tension_n", "allowable_shear_n", "fire_reduction_factor",
		"notes", "source_ref",
	},
	values: func(a models.Anchor) []any {
		return []any{
			a.ManufacturerID, a.AnchorID, a.AnchorName, a.SubstrateType, a.DiameterMM,
			a.EmbedmentMM, a.AllowableTensionN, a.AllowableShearN, a.FireReductionFactor,
			a.Notes, a.SourceRef,
		}
	},
	scan: func(a *models.Anchor) []any {
		return []any{
			&a.ID,
			&a.ManufacturerID, &a.AnchorID, &a.AnchorName, &a.SubstrateType, &a.DiameterMM,
			&a.EmbedmentMM, &a.AllowableTensionN, &a.AllowableShearN, &a.FireReductionFactor,
			&a.Notes, &a.SourceRef,
		}
	},
}

func (t libraryTable[T]) selectColumns() []string {
	return append([]string{"id"}, t.columns...)
}
