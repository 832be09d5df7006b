// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// LibraryKind names one of the manufacturer reference tables.
type LibraryKind string

// Supported library kinds.
const (
	LibraryKindProfiles LibraryKind = "profiles"
	LibraryKindRods     LibraryKind = "rods"
	LibraryKindWashers  LibraryKind = "washers"
	LibraryKindAnchors  LibraryKind = "anchors"
)

// LibraryKinds lists every supported kind in display order.
var LibraryKinds = []LibraryKind{
	LibraryKindProfiles,
	LibraryKindRods,
	LibraryKindWashers,
	LibraryKindAnchors,
}

// IsValid reports whether k is a supported library kind.
func (k LibraryKind) IsValid() bool {
	switch k {
	case LibraryKindProfiles, LibraryKindRods, LibraryKindWashers, LibraryKindAnchors:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (k LibraryKind) String() string {
	return string(k)
}

// Flag is a boolean read from a CSV cell. It accepts true/false, yes/no,
// y/n and 1/0 in any case. An empty cell reads as true; any other
// non-empty text also reads as true.
type Flag bool

// UnmarshalCSV implements the gocsv TypeUnmarshaller interface.
func (f *Flag) UnmarshalCSV(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "no", "n", "0", "0.0", "f":
		*f = false
	default:
		*f = true
	}
	return nil
}

// Scan implements [sql.Scanner]. SQLite reports booleans as integers.
func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case []byte:
		return f.UnmarshalCSV(string(v))
	case string:
		return f.UnmarshalCSV(v)
	default:
		return fmt.Errorf("models: cannot scan %T into Flag", src)
	}
	return nil
}

// Value implements [driver.Valuer].
func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}

// Profile is a strut channel section imported from a manufacturer sheet.
//
// AllowableMomentKNm and DeflectionLimitRatio are optional; zero means the
// calculation falls back to its built-in defaults.
type Profile struct {
	ID                     int64   `json:"id" csv:"-"`
	ManufacturerID         string  `json:"manufacturer_id" csv:"manufacturer_id"`
	ProfileID              string  `json:"profile_id" csv:"profile_id"`
	ProfileName            string  `json:"profile_name" csv:"profile_name"`
	MaterialGrade          string  `json:"material_grade" csv:"material_grade"`
	Finish                 string  `json:"finish" csv:"finish"`
	Slotted                Flag    `json:"slotted" csv:"slotted"`
	WidthMM                float64 `json:"width_mm" csv:"width_mm"`
	HeightMM               float64 `json:"height_mm" csv:"height_mm"`
	ThicknessMM            float64 `json:"thickness_mm" csv:"thickness_mm"`
	AreaMM2                float64 `json:"area_mm2" csv:"area_mm2"`
	MassKgPerM             float64 `json:"mass_kg_per_m" csv:"mass_kg_per_m"`
	ENPerMM2               float64 `json:"E_N_per_mm2" csv:"E_N_per_mm2"`
	IxxMM4                 float64 `json:"Ixx_mm4" csv:"Ixx_mm4"`
	IyyMM4                 float64 `json:"Iyy_mm4" csv:"Iyy_mm4"`
	ZxxMM3                 float64 `json:"Zxx_mm3" csv:"Zxx_mm3"`
	ZyyMM3                 float64 `json:"Zyy_mm3" csv:"Zyy_mm3"`
	AllowableStressNPerMM2 float64 `json:"allowable_stress_N_per_mm2" csv:"allowable_stress_N_per_mm2"`
	AllowableMomentKNm     float64 `json:"allowable_moment_knm" csv:"allowable_moment_knm"`
	DeflectionLimitRatio   float64 `json:"deflection_limit_ratio" csv:"deflection_limit_ratio"`
	Notes                  string  `json:"notes" csv:"notes"`
	SourceRef              string  `json:"source_ref" csv:"source_ref"`
}

// Rod is a threaded drop rod with its allowable loads.
type Rod struct {
	ID                  int64   `json:"id" csv:"-"`
	ManufacturerID      string  `json:"manufacturer_id" csv:"manufacturer_id"`
	RodID               string  `json:"rod_id" csv:"rod_id"`
	RodName             string  `json:"rod_name" csv:"rod_name"`
	ThreadType          string  `json:"thread_type" csv:"thread_type"`
	DiameterLabel       string  `json:"diameter_label" csv:"diameter_label"`
	DiameterMM          float64 `json:"diameter_mm" csv:"diameter_mm"`
	StressAreaMM2       float64 `json:"stress_area_mm2" csv:"stress_area_mm2"`
	MaterialGrade       string  `json:"material_grade" csv:"material_grade"`
	Finish              string  `json:"finish" csv:"finish"`
	MassKgPerM          float64 `json:"mass_kg_per_m" csv:"mass_kg_per_m"`
	AllowableTensionN   float64 `json:"allowable_tension_N" csv:"allowable_tension_N"`
	AllowableShearN     float64 `json:"allowable_shear_N" csv:"allowable_shear_N"`
	FireReductionFactor float64 `json:"fire_reduction_factor" csv:"fire_reduction_factor"`
	Notes               string  `json:"notes" csv:"notes"`
	SourceRef           string  `json:"source_ref" csv:"source_ref"`
}

// Washer is a plate or penny washer used at the rod/channel interface.
type Washer struct {
	ID                       int64   `json:"id" csv:"-"`
	ManufacturerID           string  `json:"manufacturer_id" csv:"manufacturer_id"`
	WasherID                 string  `json:"washer_id" csv:"washer_id"`
	WasherName               string  `json:"washer_name" csv:"washer_name"`
	WasherType               string  `json:"washer_type" csv:"washer_type"`
	OuterDiameterMM          float64 `json:"outer_diameter_mm" csv:"outer_diameter_mm"`
	ThicknessMM              float64 `json:"thickness_mm" csv:"thickness_mm"`
	HoleDiameterMM           float64 `json:"hole_diameter_mm" csv:"hole_diameter_mm"`
	Shape                    string  `json:"shape" csv:"shape"`
	MaterialGrade            string  `json:"material_grade" csv:"material_grade"`
	Finish                   string  `json:"finish" csv:"finish"`
	BearingAreaMultiplier    float64 `json:"bearing_area_multiplier" csv:"bearing_area_multiplier"`
	SlotProtectionMultiplier float64 `json:"slot_protection_multiplier" csv:"slot_protection_multiplier"`
	Notes                    string  `json:"notes" csv:"notes"`
	SourceRef                string  `json:"source_ref" csv:"source_ref"`
}

// Anchor is a fixing into the structural substrate.
type Anchor struct {
	ID                  int64   `json:"id" csv:"-"`
	ManufacturerID      string  `json:"manufacturer_id" csv:"manufacturer_id"`
	AnchorID            string  `json:"anchor_id" csv:"anchor_id"`
	AnchorName          string  `json:"anchor_name" csv:"anchor_name"`
	SubstrateType       string  `json:"substrate_type" csv:"substrate_type"`
	DiameterMM          float64 `json:"diameter_mm" csv:"diameter_mm"`
	EmbedmentMM         float64 `json:"embedment_mm" csv:"embedment_mm"`
	AllowableTensionN   float64 `json:"allowable_tension_N" csv:"allowable_tension_N"`
	AllowableShearN     float64 `json:"allowable_shear_N" csv:"allowable_shear_N"`
	FireReductionFactor float64 `json:"fire_reduction_factor" csv:"fire_reduction_factor"`
	Notes               string  `json:"notes" csv:"notes"`
	SourceRef           string  `json:"source_ref" csv:"source_ref"`
}

// LibraryKey is a parsed "manufacturer:part" reference.
type LibraryKey struct {
	ManufacturerID string
	PartID         string
}

// ParseLibraryKey splits key on its first colon. It returns false for
// empty keys or keys without a colon.
func ParseLibraryKey(key string) (LibraryKey, bool) {
	manufacturer, part, ok := strings.Cut(key, ":")
	if !ok {
		return LibraryKey{}, false
	}
	return LibraryKey{ManufacturerID: manufacturer, PartID: part}, true
}

// LibrarySelection is the set of library rows resolved for one bracket.
// Nil parts were not selected or not found.
type LibrarySelection struct {
	Profile *Profile
	Washer  *Washer
	Anchor  *Anchor

	// RodCapacities maps a normalised rod size (e.g. "M10") to its
	// allowable tension in newtons.
	RodCapacities map[string]float64
}
