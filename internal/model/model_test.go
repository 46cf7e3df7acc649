package model

import (
	"errors"
	"testing"
)

func TestNormalizeClampsDimensions(t *testing.T) {
	cfg := TabletopConfiguration{Shape: Rectangle, LengthMM: -50, WidthMM: 0, ThicknessMM: 0}
	cfg.Normalize()
	if cfg.LengthMM != MinDimensionMM || cfg.WidthMM != MinDimensionMM || cfg.ThicknessMM != MinDimensionMM {
		t.Errorf("expected all dimensions clamped to %v, got %v x %v x %v",
			MinDimensionMM, cfg.LengthMM, cfg.WidthMM, cfg.ThicknessMM)
	}
	if cfg.Quantity != 1 {
		t.Errorf("expected quantity clamped to 1, got %d", cfg.Quantity)
	}
}

func TestRoundDiameterSync(t *testing.T) {
	cfg := NewTabletopConfiguration(Round, 1200, 1200, 25, 1)

	cfg.SetLengthMM(1500)
	if cfg.WidthMM != 1500 {
		t.Errorf("width should mirror length update, got %v", cfg.WidthMM)
	}

	cfg.SetWidthMM(900)
	if cfg.LengthMM != 900 {
		t.Errorf("length should mirror width update, got %v", cfg.LengthMM)
	}

	// Normalize repairs a divergent pair too
	cfg.LengthMM = 1000
	cfg.WidthMM = 800
	cfg.Normalize()
	if cfg.LengthMM != cfg.WidthMM {
		t.Errorf("normalize should equalize round dimensions, got %v x %v", cfg.LengthMM, cfg.WidthMM)
	}
	if cfg.LengthMM != 800 {
		t.Errorf("smaller dimension should win, got %v", cfg.LengthMM)
	}
}

func TestNonRoundShapesDoNotMirror(t *testing.T) {
	cfg := NewTabletopConfiguration(Rectangle, 2000, 900, 25, 1)
	cfg.SetLengthMM(1800)
	if cfg.WidthMM != 900 {
		t.Errorf("rectangle width should stay 900, got %v", cfg.WidthMM)
	}
}

func TestCornerRadiusClamp(t *testing.T) {
	cfg := NewTabletopConfiguration(RoundedRect, 2000, 900, 25, 1)
	cfg.CornerRadiusMM = 5000
	cfg.Normalize()
	if cfg.CornerRadiusMM > 450 {
		t.Errorf("radius should clamp to min(length,width)/2 = 450, got %v", cfg.CornerRadiusMM)
	}

	cfg.CornerRadiusMM = -10
	cfg.Normalize()
	if cfg.CornerRadiusMM != 0 {
		t.Errorf("negative radius should clamp to 0, got %v", cfg.CornerRadiusMM)
	}
}

func TestSuperEllipseExponentClamp(t *testing.T) {
	cfg := NewTabletopConfiguration(SuperEllipse, 2000, 900, 25, 1)

	cfg.SuperEllipseExp = 0.5
	cfg.Normalize()
	if cfg.SuperEllipseExp != MinSuperEllipseExp {
		t.Errorf("exponent should clamp up to %v, got %v", MinSuperEllipseExp, cfg.SuperEllipseExp)
	}

	cfg.SuperEllipseExp = 50
	cfg.Normalize()
	if cfg.SuperEllipseExp != MaxSuperEllipseExp {
		t.Errorf("exponent should clamp down to %v, got %v", MaxSuperEllipseExp, cfg.SuperEllipseExp)
	}
}

func TestQuantityClampedToBoundedRange(t *testing.T) {
	cfg := NewTabletopConfiguration(Rectangle, 2000, 900, 25, 0)
	if cfg.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cfg.Quantity)
	}

	cfg.Quantity = MaxQuantity + 100
	cfg.Normalize()
	if cfg.Quantity != MaxQuantity {
		t.Errorf("expected quantity %d, got %d", MaxQuantity, cfg.Quantity)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cfg := TabletopConfiguration{Shape: Rectangle, LengthMM: 0, WidthMM: 900, ThicknessMM: 25, Quantity: 1}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}

	cfg = NewTabletopConfiguration(Rectangle, 2000, 900, 25, 1)
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config should pass, got %v", err)
	}
}

func TestPathBoundingBoxAndTranslate(t *testing.T) {
	p := Path{{X: 10, Y: 5}, {X: 30, Y: 5}, {X: 30, Y: 25}, {X: 10, Y: 25}}
	min, max := p.BoundingBox()
	if min.X != 10 || min.Y != 5 || max.X != 30 || max.Y != 25 {
		t.Errorf("unexpected bounding box: %v %v", min, max)
	}

	moved := p.Translate(-20, -15)
	min, max = moved.BoundingBox()
	if min.X != -10 || max.X != 10 || min.Y != -10 || max.Y != 10 {
		t.Errorf("unexpected translated box: %v %v", min, max)
	}
}
