// Package geometry generates closed 2D tabletop boundaries from a
// configuration and derives the area and edge-length measurements used for
// pricing. Every function is pure: identical inputs yield identical outputs
// and no state is shared between invocations.
package geometry

import (
	"fmt"
	"math"

	"github.com/tableforge/tableforge/internal/model"
)

// Curve sampling resolution. Closed curves (round, ellipse, super-ellipse)
// are sampled at a fixed angular resolution; rounded-rectangle corners use a
// fixed number of segments per quarter arc.
const (
	CurveSegments  = 64
	CornerSegments = 16
)

// Boundary is a canonical closed outline centered at the origin: the outer
// path plus any holes carried over from an imported outline.
type Boundary struct {
	Kind  model.ShapeKind
	Outer model.Path
	Holes []model.Path
}

// generatorFunc produces the boundary for one shape family.
type generatorFunc func(cfg model.TabletopConfiguration, outline *model.CustomOutline) (Boundary, error)

// generators maps every shape family to its boundary generator. The table
// covers the closed set of ShapeKind values; Generate fails loudly on a
// kind with no entry rather than substituting a default shape.
var generators = map[model.ShapeKind]generatorFunc{
	model.Rectangle:    generateRectangle,
	model.RoundedRect:  generateRoundedRect,
	model.DEnd:         generateDEnd,
	model.Round:        generateRound,
	model.Ellipse:      generateEllipse,
	model.SuperEllipse: generateSuperEllipse,
	model.Custom:       generateCustom,
}

// Generate produces the closed boundary for the configuration. For the
// Custom shape the imported outline must be supplied; for every other shape
// it is ignored. Returns ErrInvalidDimension for non-positive required
// parameters and ErrInvalidOutline when a custom shape has no usable
// outline. On failure no boundary is produced and downstream stages must
// not run.
func Generate(cfg model.TabletopConfiguration, outline *model.CustomOutline) (Boundary, error) {
	if err := cfg.Validate(); err != nil {
		return Boundary{}, fmt.Errorf("%w: length=%.1f width=%.1f thickness=%.1f",
			err, cfg.LengthMM, cfg.WidthMM, cfg.ThicknessMM)
	}
	gen, ok := generators[cfg.Shape]
	if !ok {
		return Boundary{}, fmt.Errorf("%w: unknown shape kind %d", model.ErrInvalidDimension, cfg.Shape)
	}
	return gen(cfg, outline)
}

func generateRectangle(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	hl := cfg.LengthMM / 2
	hw := cfg.WidthMM / 2
	return Boundary{
		Kind: model.Rectangle,
		Outer: model.Path{
			{X: -hl, Y: -hw},
			{X: hl, Y: -hw},
			{X: hl, Y: hw},
			{X: -hl, Y: hw},
		},
	}, nil
}

func generateRoundedRect(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	hl := cfg.LengthMM / 2
	hw := cfg.WidthMM / 2

	r := cfg.CornerRadiusMM
	if r > hl {
		r = hl
	}
	if r > hw {
		r = hw
	}
	if r <= 0 {
		return generateRectangle(cfg, nil)
	}

	// Counter-clockwise from the bottom edge, one quarter arc per corner.
	// Arc centers sit r inside each corner.
	var outer model.Path
	corner := func(cx, cy, startDeg float64) {
		for i := 0; i <= CornerSegments; i++ {
			a := (startDeg + 90*float64(i)/float64(CornerSegments)) * math.Pi / 180
			outer = append(outer, model.Point2D{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
		}
	}
	corner(hl-r, -hw+r, 270)  // bottom-right
	corner(hl-r, hw-r, 0)     // top-right
	corner(-hl+r, hw-r, 90)   // top-left
	corner(-hl+r, -hw+r, 180) // bottom-left

	return Boundary{Kind: model.RoundedRect, Outer: outer}, nil
}

func generateDEnd(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	hl := cfg.LengthMM / 2
	hw := cfg.WidthMM / 2

	// One flat short edge on the left, a full semicircle of radius width/2
	// on the right. The flat run between them is length - width/2, clamped
	// so a very short table degenerates to a half disc.
	r := hw
	flat := cfg.LengthMM - r
	if flat < 0 {
		flat = 0
	}
	cx := -hl + flat // semicircle center X

	outer := model.Path{
		{X: -hl, Y: -hw},
		{X: cx, Y: -hw},
	}
	for i := 1; i < CurveSegments; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/float64(CurveSegments)
		outer = append(outer, model.Point2D{X: cx + r*math.Cos(a), Y: r * math.Sin(a)})
	}
	outer = append(outer,
		model.Point2D{X: cx, Y: hw},
		model.Point2D{X: -hl, Y: hw},
	)

	return Boundary{Kind: model.DEnd, Outer: outer}, nil
}

func generateRound(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	// Length and width are kept equal by the configuration invariant; take
	// the min so an unnormalized configuration still yields a sane circle.
	d := math.Min(cfg.LengthMM, cfg.WidthMM)
	r := d / 2

	outer := make(model.Path, CurveSegments)
	for i := 0; i < CurveSegments; i++ {
		a := 2 * math.Pi * float64(i) / float64(CurveSegments)
		outer[i] = model.Point2D{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return Boundary{Kind: model.Round, Outer: outer}, nil
}

func generateEllipse(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	a := cfg.LengthMM / 2
	b := cfg.WidthMM / 2

	outer := make(model.Path, CurveSegments)
	for i := 0; i < CurveSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(CurveSegments)
		outer[i] = model.Point2D{X: a * math.Cos(t), Y: b * math.Sin(t)}
	}
	return Boundary{Kind: model.Ellipse, Outer: outer}, nil
}

func generateSuperEllipse(cfg model.TabletopConfiguration, _ *model.CustomOutline) (Boundary, error) {
	a := cfg.LengthMM / 2
	b := cfg.WidthMM / 2

	n := cfg.SuperEllipseExp
	if n < model.MinSuperEllipseExp {
		n = model.MinSuperEllipseExp
	}
	if n > model.MaxSuperEllipseExp {
		n = model.MaxSuperEllipseExp
	}
	exp := 2 / n

	outer := make(model.Path, CurveSegments)
	for i := 0; i < CurveSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(CurveSegments)
		c, s := math.Cos(t), math.Sin(t)
		outer[i] = model.Point2D{
			X: a * sign(c) * math.Pow(math.Abs(c), exp),
			Y: b * sign(s) * math.Pow(math.Abs(s), exp),
		}
	}
	return Boundary{Kind: model.SuperEllipse, Outer: outer}, nil
}

func generateCustom(_ model.TabletopConfiguration, outline *model.CustomOutline) (Boundary, error) {
	if outline == nil || outline.IsZero() {
		return Boundary{}, fmt.Errorf("%w: no outline imported", model.ErrInvalidOutline)
	}

	// Imported outlines are already centered at import time; recenter anyway
	// so a hand-built CustomOutline behaves the same.
	min, max := outline.Outer.BoundingBox()
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2

	b := Boundary{
		Kind:  model.Custom,
		Outer: outline.Outer.Translate(-cx, -cy),
	}
	for _, h := range outline.Holes {
		b.Holes = append(b.Holes, h.Translate(-cx, -cy))
	}
	return b, nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
