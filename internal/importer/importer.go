// Package importer reads manufacturer library sheets exported as CSV.
//
// Columns are matched by header name; unknown columns are ignored and
// missing ones leave their field at the zero value. Numeric cells that are
// empty or zero take the column default. Rows without a part id are
// skipped but still counted.
package importer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/mep-tools/bracket-tool/models"
)

// ErrInvalidCSV is returned when the upload cannot be parsed as CSV with a
// header row, or a numeric cell holds text.
var ErrInvalidCSV = errors.New("invalid CSV file")

// Column defaults applied to empty or zero numeric cells.
const (
	DefaultElasticModulus        = 200000.0
	DefaultFireReductionFactor   = 1.0
	DefaultBearingAreaMultiplier = 1.0
	DefaultSlotProtection        = 1.0
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Rows is the decoded content of one sheet.
type Rows[T any] struct {
	// Items holds the rows that carry a part id, in file order.
	Items []T
	// Total counts every data row read, including skipped ones.
	Total int
}

// Profiles decodes a strut profile sheet.
func Profiles(r io.Reader) (Rows[models.Profile], error) {
	return decode(r,
		func(p *models.Profile) string { return p.ProfileID },
		func(p *models.Profile) {
			p.ProfileID = strings.TrimSpace(p.ProfileID)
			p.ManufacturerID = strings.TrimSpace(p.ManufacturerID)
			p.ENPerMM2 = orDefault(p.ENPerMM2, DefaultElasticModulus)
		})
}

// Rods decodes a threaded rod sheet.
func Rods(r io.Reader) (Rows[models.Rod], error) {
	return decode(r,
		func(rod *models.Rod) string { return rod.RodID },
		func(rod *models.Rod) {
			rod.RodID = strings.TrimSpace(rod.RodID)
			rod.ManufacturerID = strings.TrimSpace(rod.ManufacturerID)
			rod.FireReductionFactor = orDefault(rod.FireReductionFactor, DefaultFireReductionFactor)
		})
}

// Washers decodes a washer sheet.
func Washers(r io.Reader) (Rows[models.Washer], error) {
	return decode(r,
		func(w *models.Washer) string { return w.WasherID },
		func(w *models.Washer) {
			w.WasherID = strings.TrimSpace(w.WasherID)
			w.ManufacturerID = strings.TrimSpace(w.ManufacturerID)
			w.BearingAreaMultiplier = orDefault(w.BearingAreaMultiplier, DefaultBearingAreaMultiplier)
			w.SlotProtectionMultiplier = orDefault(w.SlotProtectionMultiplier, DefaultSlotProtection)
		})
}

// Anchors decodes an anchor sheet.
func Anchors(r io.Reader) (Rows[models.Anchor], error) {
	return decode(r,
		func(a *models.Anchor) string { return a.AnchorID },
		func(a *models.Anchor) {
			a.AnchorID = strings.TrimSpace(a.AnchorID)
			a.ManufacturerID = strings.TrimSpace(a.ManufacturerID)
			a.FireReductionFactor = orDefault(a.FireReductionFactor, DefaultFireReductionFactor)
		})
}

func decode[T any](r io.Reader, key func(*T) string, normalize func(*T)) (Rows[T], error) {
	var all []*T
	if err := gocsv.Unmarshal(skipBOM(r), &all); err != nil {
		return Rows[T]{}, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}

	out := Rows[T]{Items: make([]T, 0, len(all)), Total: len(all)}
	for _, row := range all {
		normalize(row)
		if key(row) == "" {
			continue
		}
		out.Items = append(out.Items, *row)
	}
	return out, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
