package pricing

import (
	"math"

	"github.com/tableforge/tableforge/internal/model"
)

// ScaleSnapshot proportionally scales a previously computed snapshot to a
// new quantity. This is the explicitly inferior fallback for when the full
// costing basis (sheet limits, rate, labour rules) is no longer available:
// it cannot track sheet-count step changes or per-order charges, so the
// result is flagged Approximate and callers should warn the user. Whenever
// the basis is available, use Estimate (via engine.RepriceQuantity) instead.
func ScaleSnapshot(prev model.CostingSnapshot, newQty int) model.CostingSnapshot {
	if newQty < 1 {
		newQty = 1
	}
	oldQty := prev.Quantity
	if oldQty < 1 {
		oldQty = 1
	}
	factor := float64(newQty) / float64(oldQty)

	snap := prev
	snap.Quantity = newQty
	snap.Approximate = true

	if prev.SheetsRequired > 0 {
		snap.SheetsRequired = int(math.Ceil(float64(prev.SheetsRequired) * factor))
	}
	snap.MaterialCost = prev.MaterialCost * factor

	snap.LabourItems = make([]model.LabourLine, len(prev.LabourItems))
	snap.LabourTotal = 0
	for i, line := range prev.LabourItems {
		line.BasisQty *= factor
		line.Cost *= factor
		snap.LabourItems[i] = line
		snap.LabourTotal += line.Cost
	}

	snap.BaseCost = snap.MaterialCost + snap.LabourTotal
	snap.Profit = snap.BaseCost * (prev.ProfitPercent / 100)
	snap.Total = snap.BaseCost + snap.Profit
	return snap
}
