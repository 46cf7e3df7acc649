package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tableforge/tableforge/internal/engine"
	"github.com/tableforge/tableforge/internal/geometry"
	"github.com/tableforge/tableforge/internal/model"
)

func pricedQuote(t *testing.T) (model.Quote, geometry.Boundary) {
	t.Helper()
	cat := model.DefaultCatalog()

	cfg := model.NewTabletopConfiguration(model.RoundedRect, 2000, 900, 25, 2)
	cfg.CornerRadiusMM = 60
	q := model.NewQuote("Boardroom table", cfg, "MDF Raw", 30)

	snap, err := engine.PriceQuote(q, cat)
	if err != nil {
		t.Fatalf("pricing failed: %v", err)
	}
	q.Snapshot = &snap

	boundary, err := geometry.Generate(q.Config, nil)
	if err != nil {
		t.Fatalf("boundary failed: %v", err)
	}
	return q, boundary
}

func TestExportQuotePDF(t *testing.T) {
	q, boundary := pricedQuote(t)
	path := filepath.Join(t.TempDir(), "quote.pdf")

	if err := ExportQuotePDF(path, q, boundary); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestExportQuotePDFWithHoles(t *testing.T) {
	cat := model.DefaultCatalog()
	outline, err := model.NewCustomOutline([]model.Path{
		{{X: 0, Y: 0}, {X: 1200, Y: 0}, {X: 1200, Y: 700}, {X: 0, Y: 700}},
		{{X: 550, Y: 300}, {X: 650, Y: 300}, {X: 650, Y: 400}, {X: 550, Y: 400}},
	}, "mm")
	if err != nil {
		t.Fatalf("outline failed: %v", err)
	}

	cfg := model.NewTabletopConfiguration(model.Custom, 1200, 700, 25, 1)
	q := model.NewQuote("Desk with grommet", cfg, "MDF Raw", 30)
	q.Outline = &outline

	snap, err := engine.PriceQuote(q, cat)
	if err != nil {
		t.Fatalf("pricing failed: %v", err)
	}
	q.Snapshot = &snap

	boundary, err := geometry.Generate(q.Config, q.Outline)
	if err != nil {
		t.Fatalf("boundary failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "desk.pdf")
	if err := ExportQuotePDF(path, q, boundary); err != nil {
		t.Fatalf("export failed: %v", err)
	}
}

func TestExportQuotePDFRequiresSnapshot(t *testing.T) {
	q, boundary := pricedQuote(t)
	q.Snapshot = nil

	path := filepath.Join(t.TempDir(), "quote.pdf")
	if err := ExportQuotePDF(path, q, boundary); err == nil {
		t.Error("expected an error for a quote without a snapshot")
	}
}
