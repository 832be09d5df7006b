// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package models

import (
	"encoding/json"
	"time"
)

// Defaults applied to fields omitted from a project snapshot.
const (
	DefaultBracketReference = "BKT001"
	DefaultSpacingMM        = 1500
	DefaultOverallWidthMM   = 600
	DefaultTierCount        = 3
	DefaultTierSpacingMM    = 300
	DefaultDropRodSize      = "M10"
	DefaultServiceSpacingMM = 300
)

// Upper bounds of a snapshot. The validate tags below repeat them.
const (
	MaxTierCount = 20
	MaxServices  = 500
)

// BracketConfig describes the geometry of a trapeze bracket and the
// manufacturer parts selected for it.
//
// Library selections use keys of the form "manufacturer:part"
// (e.g. "hilti:MQ-41").
type BracketConfig struct {
	SpacingMM      int    `json:"spacing_mm" validate:"gt=0"`
	OverallWidthMM int    `json:"overall_width_mm" validate:"gt=0"`
	TierCount      int    `json:"tier_count" validate:"gte=1,lte=20"`
	TierSpacingMM  int    `json:"tier_spacing_mm" validate:"gte=0"`
	DropRodSize    string `json:"drop_rod_size" validate:"required"`

	StrutProfileID *string `json:"strut_profile_id"`
	WasherID       *string `json:"washer_id"`
	AnchorID       *string `json:"anchor_id"`
}

// NewBracketConfig returns a BracketConfig populated with defaults.
func NewBracketConfig() BracketConfig {
	return BracketConfig{
		SpacingMM:      DefaultSpacingMM,
		OverallWidthMM: DefaultOverallWidthMM,
		TierCount:      DefaultTierCount,
		TierSpacingMM:  DefaultTierSpacingMM,
		DropRodSize:    DefaultDropRodSize,
	}
}

// UnmarshalJSON decodes b on top of the defaults so that omitted fields
// keep their default values.
func (b *BracketConfig) UnmarshalJSON(data []byte) error {
	type plain BracketConfig
	cfg := plain(NewBracketConfig())
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*b = BracketConfig(cfg)
	return nil
}

// ServiceItem is one MEP service run carried on a bracket tier.
type ServiceItem struct {
	// ServiceType is pipe, duct, tray, basket, ladder or trunking.
	ServiceType  string  `json:"service_type" validate:"required"`
	Tier         int     `json:"tier" validate:"gte=1"`
	WeightKgPerM float64 `json:"weight_kg_per_m" validate:"gte=0"`
	SpacingMM    int     `json:"spacing_mm" validate:"gte=0"`
	Notes        string  `json:"notes"`
}

// UnmarshalJSON decodes a service item applying the default spacing.
func (s *ServiceItem) UnmarshalJSON(data []byte) error {
	type plain ServiceItem
	item := plain{SpacingMM: DefaultServiceSpacingMM}
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*s = ServiceItem(item)
	return nil
}

// ProjectSnapshot is the full design state of a project. It is stored as
// JSON on the project and copied verbatim into every revision.
type ProjectSnapshot struct {
	Name             string        `json:"name" validate:"required,max=200"`
	BracketReference string        `json:"bracket_reference" validate:"required,max=80"`
	Bracket          BracketConfig `json:"bracket"`
	Services         []ServiceItem `json:"services" validate:"max=500,dive"`
}

// NewProjectSnapshot returns an empty snapshot populated with defaults.
func NewProjectSnapshot() ProjectSnapshot {
	return ProjectSnapshot{
		BracketReference: DefaultBracketReference,
		Bracket:          NewBracketConfig(),
		Services:         []ServiceItem{},
	}
}

// UnmarshalJSON decodes a snapshot applying defaults to omitted fields.
func (p *ProjectSnapshot) UnmarshalJSON(data []byte) error {
	type plain ProjectSnapshot
	snapshot := plain(NewProjectSnapshot())
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	if snapshot.Services == nil {
		snapshot.Services = []ServiceItem{}
	}
	*p = ProjectSnapshot(snapshot)
	return nil
}

// Project is a named container for a bracket design owned by one user.
type Project struct {
	ID               string          `json:"id"`
	OwnerUserID      int64           `json:"-"`
	Name             string          `json:"name"`
	BracketReference string          `json:"bracket_reference"`
	Snapshot         ProjectSnapshot `json:"-"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProjectListItem is the summary row returned by the project listing.
type ProjectListItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	BracketReference string    `json:"bracket_reference"`
	UpdatedAt        time.Time `json:"updated_at"`
}
