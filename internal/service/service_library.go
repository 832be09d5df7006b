// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/mep-tools/bracket-tool/internal/calc"
	"github.com/mep-tools/bracket-tool/internal/importer"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/store"
	"github.com/mep-tools/bracket-tool/models"
)

type libraryService struct {
	repository store.LibraryRepository
	logger     *logger.Logger
}

// NewLibraryService constructs a LibraryService over repository.
func NewLibraryService(repository store.LibraryRepository, logger *logger.Logger) LibraryService {
	return &libraryService{
		repository: repository,
		logger:     logger,
	}
}

// Import decodes r as a sheet of kind and inserts every row carrying a
// part id in a single transaction.
func (l *libraryService) Import(ctx context.Context, kind models.LibraryKind, r io.Reader) (models.ImportResponse, error) {
	log := logger.FromContext(ctx)

	var (
		inserted, total int
		err             error
	)
	switch kind {
	case models.LibraryKindProfiles:
		inserted, total, err = importSheet(ctx, r, importer.Profiles, l.repository.InsertProfiles)
	case models.LibraryKindRods:
		inserted, total, err = importSheet(ctx, r, importer.Rods, l.repository.InsertRods)
	case models.LibraryKindWashers:
		inserted, total, err = importSheet(ctx, r, importer.Washers, l.repository.InsertWashers)
	case models.LibraryKindAnchors:
		inserted, total, err = importSheet(ctx, r, importer.Anchors, l.repository.InsertAnchors)
	default:
		return models.ImportResponse{}, fmt.Errorf("%w: %s", ErrUnknownLibraryKind, kind)
	}
	if err != nil {
		log.Err(err).Str("kind", kind.String()).Msg("library import failed")
		return models.ImportResponse{}, err
	}

	log.Info().
		Str("kind", kind.String()).
		Int("inserted", inserted).
		Int("rows", total).
		Msg("library imported")

	return models.ImportResponse{Inserted: inserted, Rows: total}, nil
}

func importSheet[T any](
	ctx context.Context,
	r io.Reader,
	decode func(io.Reader) (importer.Rows[T], error),
	insert func(context.Context, []T) (int, error),
) (int, int, error) {
	rows, err := decode(r)
	if err != nil {
		return 0, 0, err
	}

	inserted, err := insert(ctx, rows.Items)
	if err != nil {
		return 0, 0, fmt.Errorf("error storing library rows: %w", err)
	}

	return inserted, rows.Total, nil
}

func (l *libraryService) List(ctx context.Context, kind models.LibraryKind) (any, error) {
	switch kind {
	case models.LibraryKindProfiles:
		return l.repository.ListProfiles(ctx)
	case models.LibraryKindRods:
		return l.repository.ListRods(ctx)
	case models.LibraryKindWashers:
		return l.repository.ListWashers(ctx)
	case models.LibraryKindAnchors:
		return l.repository.ListAnchors(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibraryKind, kind)
	}
}

func (l *libraryService) Get(ctx context.Context, kind models.LibraryKind, id int64) (any, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibraryKind, kind)
	}
	return l.repository.GetItem(ctx, kind, id)
}

// Resolve maps the "manufacturer:part" selections on bracket to library
// rows. Empty, malformed or unknown keys resolve to nil parts. Rod
// capacities come from every imported rod, keyed by normalised size; a
// later row overrides an earlier one of the same size.
func (l *libraryService) Resolve(ctx context.Context, bracket models.BracketConfig) (models.LibrarySelection, error) {
	var (
		sel models.LibrarySelection
		err error
	)

	if key, ok := selectionKey(bracket.StrutProfileID); ok {
		if sel.Profile, err = l.repository.FindProfile(ctx, key); err != nil {
			return models.LibrarySelection{}, err
		}
	}
	if key, ok := selectionKey(bracket.WasherID); ok {
		if sel.Washer, err = l.repository.FindWasher(ctx, key); err != nil {
			return models.LibrarySelection{}, err
		}
	}
	if key, ok := selectionKey(bracket.AnchorID); ok {
		if sel.Anchor, err = l.repository.FindAnchor(ctx, key); err != nil {
			return models.LibrarySelection{}, err
		}
	}

	rods, err := l.repository.ListRods(ctx)
	if err != nil {
		return models.LibrarySelection{}, err
	}
	sel.RodCapacities = rodCapacities(rods)

	return sel, nil
}

func selectionKey(id *string) (models.LibraryKey, bool) {
	if id == nil || *id == "" {
		return models.LibraryKey{}, false
	}
	return models.ParseLibraryKey(*id)
}

func rodCapacities(rods []models.Rod) map[string]float64 {
	caps := make(map[string]float64, len(calc.RodOrder))
	for _, rod := range rods {
		label := rod.DiameterLabel
		if label == "" {
			label = rod.RodID
		}
		if rod.AllowableTensionN > 0 {
			caps[calc.ParseRodSize(label)] = rod.AllowableTensionN
		}
	}
	return caps
}
