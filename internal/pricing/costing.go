package pricing

import (
	"math"

	"github.com/tableforge/tableforge/internal/model"
)

// EstimateInput carries everything the cost estimation needs: the piece
// measurements, the resolved sheet limits (nil when no material costing is
// possible), the labour schedule, and the commercial parameters.
type EstimateInput struct {
	AreaM2      float64
	EdgeLengthM float64

	PieceLengthMM float64
	PieceWidthMM  float64

	Sheet *SheetLimits
	Rules []model.LabourRule
	Edge  model.EdgeProfile

	Quantity      int
	ProfitPercent float64
}

// Estimate produces a complete costing snapshot:
//
//  1. piecesPerSheet = max(1, floor(maxLen/pieceLen) x floor(maxWid/pieceWid))
//     — a conservative grid estimate, not a nesting optimization.
//  2. sheetsRequired = ceil(quantity / piecesPerSheet)
//  3. materialCost = ratePerSqm x sheetArea x sheetsRequired
//  4. one labour line per rule matching the edge profile, cost = basis x rate;
//     non-matching rules are omitted entirely, not zeroed
//  5-8. labour subtotal, base cost, profit, total.
//
// When Sheet is nil the material fields are left unset rather than
// fabricated, and the base cost carries labour only.
func Estimate(in EstimateInput) model.CostingSnapshot {
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	snap := model.CostingSnapshot{
		Quantity:      qty,
		AreaM2:        in.AreaM2,
		EdgeLengthM:   in.EdgeLengthM,
		ProfitPercent: in.ProfitPercent,
	}

	if in.Sheet != nil {
		pieces := piecesPerSheet(*in.Sheet, in.PieceLengthMM, in.PieceWidthMM)
		sheets := int(math.Ceil(float64(qty) / float64(pieces)))

		snap.PiecesPerSheet = pieces
		snap.SheetsRequired = sheets
		snap.SheetAreaM2 = in.Sheet.SheetAreaM2()
		snap.MaterialCost = in.Sheet.RatePerSqm * snap.SheetAreaM2 * float64(sheets)
	}

	for _, rule := range in.Rules {
		if !rule.Matches(in.Edge) {
			continue
		}
		basisQty := basisQuantity(rule.Basis, in.AreaM2, in.EdgeLengthM, qty)
		cost := basisQty * rule.Rate
		snap.LabourItems = append(snap.LabourItems, model.LabourLine{
			RuleID:   rule.ID,
			Label:    rule.Label,
			Basis:    rule.Basis,
			BasisQty: basisQty,
			Rate:     rule.Rate,
			Cost:     cost,
		})
		snap.LabourTotal += cost
	}

	snap.BaseCost = snap.MaterialCost + snap.LabourTotal
	snap.Profit = snap.BaseCost * (in.ProfitPercent / 100)
	snap.Total = snap.BaseCost + snap.Profit
	return snap
}

// piecesPerSheet is the conservative grid-packing estimate: whole pieces
// per row times whole rows, never less than one.
func piecesPerSheet(sheet SheetLimits, pieceLengthMM, pieceWidthMM float64) int {
	l := pieceLengthMM
	if l < model.MinDimensionMM {
		l = model.MinDimensionMM
	}
	w := pieceWidthMM
	if w < model.MinDimensionMM {
		w = model.MinDimensionMM
	}

	pieces := int(math.Floor(sheet.MaxLengthMM/l)) * int(math.Floor(sheet.MaxWidthMM/w))
	if pieces < 1 {
		pieces = 1
	}
	return pieces
}

// basisQuantity derives a labour rule's basis quantity for the given
// measurements and quantity.
func basisQuantity(basis model.CostBasis, areaM2, edgeLengthM float64, qty int) float64 {
	switch basis {
	case model.PerEdgeLength:
		return edgeLengthM * float64(qty)
	case model.PerArea:
		return areaM2 * float64(qty)
	case model.PerTable:
		return float64(qty)
	case model.PerOrder:
		return 1
	default:
		return 0
	}
}
