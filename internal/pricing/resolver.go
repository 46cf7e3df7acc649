// Package pricing resolves material sheet limits from the catalog and turns
// measurements, labour rules, quantity and profit into a complete costing
// snapshot. Everything here is pure and safe for concurrent use.
package pricing

import (
	"fmt"
	"math"

	"github.com/tableforge/tableforge/internal/model"
)

// SheetLimits is the resolved manufacturing limit for one material at one
// thickness: the maximum sheet obtainable and its per-area rate.
type SheetLimits struct {
	ThicknessMM float64 `json:"thickness_mm"`
	MaxLengthMM float64 `json:"max_length_mm"`
	MaxWidthMM  float64 `json:"max_width_mm"`
	RatePerSqm  float64 `json:"rate_per_sqm"`
}

// SheetAreaM2 returns the area of one full sheet in m².
func (s SheetLimits) SheetAreaM2() float64 {
	return (s.MaxLengthMM / 1000) * (s.MaxWidthMM / 1000)
}

// ResolveSheet returns the sheet limits applicable at the requested
// thickness. An exact thickness match is preferred; otherwise the record
// nearest in thickness wins, with earlier records winning ties. It fails
// with ErrNoCatalogData only when the entry has no thickness records at
// all — in every other case some usable limit is resolved.
func ResolveSheet(entry model.MaterialCatalogEntry, thicknessMM float64) (SheetLimits, error) {
	if len(entry.Thicknesses) == 0 {
		return SheetLimits{}, fmt.Errorf("%w: %s", model.ErrNoCatalogData, entry.Name)
	}

	best := entry.Thicknesses[0]
	bestDiff := math.Abs(best.ThicknessMM - thicknessMM)
	for _, rec := range entry.Thicknesses[1:] {
		diff := math.Abs(rec.ThicknessMM - thicknessMM)
		if diff < bestDiff {
			best = rec
			bestDiff = diff
		}
	}

	return SheetLimits{
		ThicknessMM: best.ThicknessMM,
		MaxLengthMM: best.MaxLengthMM,
		MaxWidthMM:  best.MaxWidthMM,
		RatePerSqm:  entry.RatePerSqm,
	}, nil
}
