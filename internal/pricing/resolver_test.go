package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableforge/tableforge/internal/model"
)

func testMaterial() model.MaterialCatalogEntry {
	return model.NewMaterialCatalogEntry("Test MDF", "MDF", "Raw", 20.0, []model.ThicknessRecord{
		{ThicknessMM: 18, MaxLengthMM: 3050, MaxWidthMM: 1220},
		{ThicknessMM: 25, MaxLengthMM: 3600, MaxWidthMM: 1800},
		{ThicknessMM: 30, MaxLengthMM: 2400, MaxWidthMM: 1200},
	})
}

func TestResolveSheetExactMatch(t *testing.T) {
	sheet, err := ResolveSheet(testMaterial(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, sheet.ThicknessMM)
	assert.Equal(t, 3600.0, sheet.MaxLengthMM)
	assert.Equal(t, 1800.0, sheet.MaxWidthMM)
	assert.Equal(t, 20.0, sheet.RatePerSqm)
}

func TestResolveSheetNearestThickness(t *testing.T) {
	// 22mm requested: 25mm (diff 3) beats 18mm (diff 4)
	sheet, err := ResolveSheet(testMaterial(), 22)
	require.NoError(t, err)
	assert.Equal(t, 25.0, sheet.ThicknessMM)

	// Far outside the range still resolves to the nearest record
	sheet, err = ResolveSheet(testMaterial(), 100)
	require.NoError(t, err)
	assert.Equal(t, 30.0, sheet.ThicknessMM)
}

func TestResolveSheetTieKeepsEarlierRecord(t *testing.T) {
	entry := testMaterial()
	entry.Thicknesses = []model.ThicknessRecord{
		{ThicknessMM: 18, MaxLengthMM: 3050, MaxWidthMM: 1220},
		{ThicknessMM: 22, MaxLengthMM: 3600, MaxWidthMM: 1800},
	}
	// 20mm is equidistant from 18 and 22; the earlier record wins.
	sheet, err := ResolveSheet(entry, 20)
	require.NoError(t, err)
	assert.Equal(t, 18.0, sheet.ThicknessMM)
}

func TestResolveSheetNoRecords(t *testing.T) {
	entry := model.NewMaterialCatalogEntry("Empty", "MDF", "Raw", 20.0, nil)
	_, err := ResolveSheet(entry, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNoCatalogData)
}

func TestSheetAreaM2(t *testing.T) {
	sheet := SheetLimits{MaxLengthMM: 3600, MaxWidthMM: 1800}
	assert.InDelta(t, 6.48, sheet.SheetAreaM2(), 1e-9)
}
