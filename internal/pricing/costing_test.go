package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableforge/tableforge/internal/model"
)

func testSheet() *SheetLimits {
	return &SheetLimits{ThicknessMM: 25, MaxLengthMM: 3600, MaxWidthMM: 1800, RatePerSqm: 20.0}
}

func testRules() []model.LabourRule {
	return []model.LabourRule{
		{ID: "cut", Label: "CNC cutting", Basis: model.PerEdgeLength, Rate: 4.0, Applies: model.EdgeAny},
		{ID: "band", Label: "Edge banding", Basis: model.PerEdgeLength, Rate: 6.0, Applies: model.EdgeSquare},
		{ID: "bevel", Label: "Bevel machining", Basis: model.PerEdgeLength, Rate: 11.0, Applies: model.EdgeBevel},
		{ID: "sand", Label: "Sanding", Basis: model.PerArea, Rate: 9.0, Applies: model.EdgeAny},
		{ID: "pack", Label: "Packing", Basis: model.PerTable, Rate: 7.5, Applies: model.EdgeAny},
		{ID: "setup", Label: "Job setup", Basis: model.PerOrder, Rate: 35.0, Applies: model.EdgeAny},
	}
}

func TestEstimateSheetCounting(t *testing.T) {
	// 2000 x 900 pieces on a 3600 x 1800 sheet: floor(3600/2000)=1 along,
	// floor(1800/900)=2 across, so 2 pieces per sheet. Three pieces need 2 sheets.
	snap := Estimate(EstimateInput{
		AreaM2:        1.8,
		EdgeLengthM:   5.8,
		PieceLengthMM: 2000,
		PieceWidthMM:  900,
		Sheet:         testSheet(),
		Quantity:      3,
		ProfitPercent: 0,
	})

	assert.Equal(t, 2, snap.PiecesPerSheet)
	assert.Equal(t, 2, snap.SheetsRequired)
	assert.InDelta(t, 6.48, snap.SheetAreaM2, 1e-9)
	assert.InDelta(t, 20.0*6.48*2, snap.MaterialCost, 1e-9)
	assert.True(t, snap.HasMaterial())
}

func TestEstimateOversizedPieceStillGetsOneSheet(t *testing.T) {
	snap := Estimate(EstimateInput{
		PieceLengthMM: 5000, // longer than any sheet
		PieceWidthMM:  900,
		Sheet:         testSheet(),
		Quantity:      1,
	})
	assert.Equal(t, 1, snap.PiecesPerSheet, "pieces per sheet never drops below one")
	assert.Equal(t, 1, snap.SheetsRequired)
}

func TestEstimateLabourFiltering(t *testing.T) {
	snap := Estimate(EstimateInput{
		AreaM2:        1.8,
		EdgeLengthM:   5.8,
		PieceLengthMM: 2000,
		PieceWidthMM:  900,
		Sheet:         testSheet(),
		Rules:         testRules(),
		Edge:          model.EdgeSquare,
		Quantity:      1,
	})

	labels := make([]string, 0, len(snap.LabourItems))
	for _, item := range snap.LabourItems {
		labels = append(labels, item.Label)
	}
	// The bevel rule is omitted entirely, not carried with a zero cost.
	assert.NotContains(t, labels, "Bevel machining")
	assert.Contains(t, labels, "Edge banding")
	assert.Len(t, snap.LabourItems, 5)
}

func TestEstimateBasisQuantities(t *testing.T) {
	snap := Estimate(EstimateInput{
		AreaM2:      2.0,
		EdgeLengthM: 6.0,
		Rules:       testRules(),
		Edge:        model.EdgeSquare,
		Quantity:    4,
	})

	byID := make(map[string]model.LabourLine)
	for _, item := range snap.LabourItems {
		byID[item.RuleID] = item
	}

	require.Contains(t, byID, "cut")
	assert.InDelta(t, 6.0*4, byID["cut"].BasisQty, 1e-9, "per-edge basis scales with quantity")
	assert.InDelta(t, 2.0*4, byID["sand"].BasisQty, 1e-9, "per-area basis scales with quantity")
	assert.InDelta(t, 4.0, byID["pack"].BasisQty, 1e-9, "per-table basis is the quantity itself")
	assert.InDelta(t, 1.0, byID["setup"].BasisQty, 1e-9, "per-order basis never scales")
	assert.InDelta(t, 35.0, byID["setup"].Cost, 1e-9)
}

func TestEstimateWithoutMaterial(t *testing.T) {
	snap := Estimate(EstimateInput{
		AreaM2:      1.8,
		EdgeLengthM: 5.8,
		Rules:       testRules(),
		Edge:        model.EdgeSquare,
		Quantity:    1,
	})

	assert.False(t, snap.HasMaterial())
	assert.Zero(t, snap.MaterialCost)
	assert.Zero(t, snap.SheetsRequired)
	assert.Equal(t, snap.LabourTotal, snap.BaseCost, "labour-only base cost when no sheet resolves")
	assert.Greater(t, snap.BaseCost, 0.0)
}

func TestEstimateProfitAndTotal(t *testing.T) {
	snap := Estimate(EstimateInput{
		AreaM2:        1.8,
		EdgeLengthM:   5.8,
		PieceLengthMM: 2000,
		PieceWidthMM:  900,
		Sheet:         testSheet(),
		Rules:         testRules(),
		Edge:          model.EdgeSquare,
		Quantity:      1,
		ProfitPercent: 30,
	})

	assert.InDelta(t, snap.MaterialCost+snap.LabourTotal, snap.BaseCost, 1e-9)
	assert.InDelta(t, snap.BaseCost*0.30, snap.Profit, 1e-9)
	assert.InDelta(t, snap.BaseCost+snap.Profit, snap.Total, 1e-9)
	assert.False(t, snap.Approximate)
}

func TestEstimateClampsQuantity(t *testing.T) {
	snap := Estimate(EstimateInput{Quantity: 0, Rules: testRules(), Edge: model.EdgeSquare})
	assert.Equal(t, 1, snap.Quantity)
}
