// Package engine chains the computation stages — boundary generation,
// measurement, catalog resolution, cost estimation — into a single
// synchronous recompute. Each call is pure and reads only its own inputs,
// so independent configurations can be priced concurrently without locking.
package engine

import (
	"fmt"

	"github.com/tableforge/tableforge/internal/geometry"
	"github.com/tableforge/tableforge/internal/model"
	"github.com/tableforge/tableforge/internal/pricing"
)

// Recompute runs the full pipeline for one configuration snapshot and
// returns a complete costing snapshot. The caller decides when a recompute
// is warranted; there is no observer machinery here.
//
// outline is required only for the Custom shape. material may be nil, in
// which case the snapshot omits material costing and carries labour only;
// a non-nil material with no thickness records is a genuine failure
// (ErrNoCatalogData). Geometry failures (ErrInvalidDimension,
// ErrInvalidOutline) abort before any costing happens.
func Recompute(cfg model.TabletopConfiguration, outline *model.CustomOutline, material *model.MaterialCatalogEntry, rules []model.LabourRule, profitPercent float64) (model.CostingSnapshot, error) {
	cfg.Normalize()
	if cfg.Shape == model.Custom && outline != nil {
		outline.ApplyTo(&cfg)
	}

	boundary, err := geometry.Generate(cfg, outline)
	if err != nil {
		return model.CostingSnapshot{}, err
	}
	meas := geometry.Measure(cfg, boundary)

	var sheet *pricing.SheetLimits
	if material != nil {
		limits, err := pricing.ResolveSheet(*material, cfg.ThicknessMM)
		if err != nil {
			return model.CostingSnapshot{}, err
		}
		sheet = &limits
	}

	return pricing.Estimate(pricing.EstimateInput{
		AreaM2:        meas.AreaM2,
		EdgeLengthM:   meas.EdgeLengthM,
		PieceLengthMM: cfg.LengthMM,
		PieceWidthMM:  cfg.WidthMM,
		Sheet:         sheet,
		Rules:         rules,
		Edge:          cfg.Edge,
		Quantity:      cfg.Quantity,
		ProfitPercent: profitPercent,
	}), nil
}

// RepriceQuantity recomputes the snapshot from scratch at a new quantity.
// This is the default and correct quantity-change path: it reflects
// sheet-count step changes and avoids compounding rounding error. Only when
// the costing basis is gone should callers fall back to
// pricing.ScaleSnapshot.
func RepriceQuantity(cfg model.TabletopConfiguration, outline *model.CustomOutline, material *model.MaterialCatalogEntry, rules []model.LabourRule, profitPercent float64, qty int) (model.CostingSnapshot, error) {
	cfg.Quantity = qty
	return Recompute(cfg, outline, material, rules, profitPercent)
}

// PriceQuote prices a stored quote against a catalog, resolving the
// material by name.
func PriceQuote(q model.Quote, cat model.Catalog) (model.CostingSnapshot, error) {
	material := cat.FindMaterialByName(q.MaterialName)
	if q.MaterialName != "" && material == nil {
		return model.CostingSnapshot{}, fmt.Errorf("material %q not in catalog", q.MaterialName)
	}
	return Recompute(q.Config, q.Outline, material, cat.Labour, q.ProfitPercent)
}
