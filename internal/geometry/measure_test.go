package geometry

import (
	"math"
	"testing"

	"github.com/tableforge/tableforge/internal/model"
)

func measureShape(t *testing.T, cfg model.TabletopConfiguration, outline *model.CustomOutline) Measurements {
	t.Helper()
	b, err := Generate(cfg, outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return Measure(cfg, b)
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeasureRectangle(t *testing.T) {
	cfg := model.NewTabletopConfiguration(model.Rectangle, 2000, 900, 25, 1)
	m := measureShape(t, cfg, nil)
	if !almostEqual(m.AreaM2, 1.8, 1e-9) {
		t.Errorf("expected area 1.8 m², got %v", m.AreaM2)
	}
	if !almostEqual(m.EdgeLengthM, 5.8, 1e-9) {
		t.Errorf("expected edge length 5.8 m, got %v", m.EdgeLengthM)
	}
}

func TestMeasureRoundedRectBillsFullBoundingArea(t *testing.T) {
	cfg := model.NewTabletopConfiguration(model.RoundedRect, 2000, 900, 25, 1)
	cfg.CornerRadiusMM = 80

	m := measureShape(t, cfg, nil)
	// Corner cut-outs are not discounted: same figures as the rectangle.
	if !almostEqual(m.AreaM2, 1.8, 1e-9) || !almostEqual(m.EdgeLengthM, 5.8, 1e-9) {
		t.Errorf("rounded rectangle should bill like the bounding rectangle, got %v m² / %v m", m.AreaM2, m.EdgeLengthM)
	}
}

func TestMeasureRound(t *testing.T) {
	cfg := model.NewTabletopConfiguration(model.Round, 1200, 1200, 25, 1)
	m := measureShape(t, cfg, nil)
	if !almostEqual(m.AreaM2, math.Pi*0.6*0.6, 1e-9) {
		t.Errorf("expected area %.4f m², got %v", math.Pi*0.36, m.AreaM2)
	}
	if !almostEqual(m.EdgeLengthM, math.Pi*1.2, 1e-9) {
		t.Errorf("expected circumference %.4f m, got %v", math.Pi*1.2, m.EdgeLengthM)
	}
}

func TestMeasureDEnd(t *testing.T) {
	cfg := model.NewTabletopConfiguration(model.DEnd, 1800, 800, 25, 1)
	m := measureShape(t, cfg, nil)
	if !almostEqual(m.AreaM2, 1.8*0.8, 1e-9) {
		t.Errorf("expected area 1.44 m², got %v", m.AreaM2)
	}
	// Conservative perimeter: pi * max(l, w) + flat run (l - w/2)
	want := math.Pi*1.8 + (1.8 - 0.4)
	if !almostEqual(m.EdgeLengthM, want, 1e-9) {
		t.Errorf("expected edge length %v m, got %v", want, m.EdgeLengthM)
	}
}

func TestMeasureEllipse(t *testing.T) {
	cfg := model.NewTabletopConfiguration(model.Ellipse, 2000, 1000, 25, 1)
	m := measureShape(t, cfg, nil)
	if !almostEqual(m.AreaM2, math.Pi*1.0*0.5, 1e-9) {
		t.Errorf("expected area %.4f m², got %v", math.Pi*0.5, m.AreaM2)
	}

	// Ramanujan II against the exact circle case: a == b degenerates to 2*pi*r
	circle := model.NewTabletopConfiguration(model.Ellipse, 1000, 1000, 25, 1)
	mc := measureShape(t, circle, nil)
	if !almostEqual(mc.EdgeLengthM, math.Pi, 1e-6) {
		t.Errorf("circular ellipse perimeter should be pi, got %v", mc.EdgeLengthM)
	}
}

func TestMeasureSuperEllipseUsesEllipseFormulas(t *testing.T) {
	se := model.NewTabletopConfiguration(model.SuperEllipse, 1600, 900, 25, 1)
	el := model.NewTabletopConfiguration(model.Ellipse, 1600, 900, 25, 1)
	ms := measureShape(t, se, nil)
	me := measureShape(t, el, nil)
	if ms.AreaM2 != me.AreaM2 || ms.EdgeLengthM != me.EdgeLengthM {
		t.Errorf("super-ellipse should price on the ellipse formulas: %v vs %v", ms, me)
	}
}

func TestMeasureCustomPolygon(t *testing.T) {
	// 1000 x 500 mm rectangle as a custom outline: shoelace area and perimeter
	outline, err := model.NewCustomOutline([]model.Path{
		{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 500}, {X: 0, Y: 500}},
	}, "mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := model.NewTabletopConfiguration(model.Custom, 1000, 500, 25, 1)
	m := measureShape(t, cfg, &outline)
	if !almostEqual(m.AreaM2, 0.5, 1e-9) {
		t.Errorf("expected area 0.5 m², got %v", m.AreaM2)
	}
	if !almostEqual(m.EdgeLengthM, 3.0, 1e-9) {
		t.Errorf("expected perimeter 3.0 m, got %v", m.EdgeLengthM)
	}
}

func TestMeasureCustomHolesNotSubtracted(t *testing.T) {
	outline, err := model.NewCustomOutline([]model.Path{
		{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 500}, {X: 0, Y: 500}},
		{{X: 400, Y: 200}, {X: 600, Y: 200}, {X: 600, Y: 300}, {X: 400, Y: 300}},
	}, "mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := model.NewTabletopConfiguration(model.Custom, 1000, 500, 25, 1)
	m := measureShape(t, cfg, &outline)
	// The blank is cut from the full outer area regardless of holes.
	if !almostEqual(m.AreaM2, 0.5, 1e-9) {
		t.Errorf("holes should not reduce billed area, got %v m²", m.AreaM2)
	}
}
