package geometry

import (
	"math"

	"github.com/tableforge/tableforge/internal/model"
)

// Measurements holds the pricing measurements derived from a boundary,
// converted to metres before any squaring or multiplication.
type Measurements struct {
	AreaM2      float64 `json:"area_m2"`
	EdgeLengthM float64 `json:"edge_length_m"`
}

// Measure computes the surface area and boundary edge length for the
// configuration's boundary. Regular shapes use closed-form formulas;
// custom outlines use polygon integration over the outer path.
//
// The formulas are deliberately conservative for pricing: rectangle-family
// shapes bill the full length x width bounding area (corner cut-outs are
// negligible), and the D-end perimeter uses the larger dimension as the
// effective diameter rather than the exact arc length.
//
// All dimensions are clamped to a minimum of 1mm before use, so the result
// is always finite and non-negative.
func Measure(cfg model.TabletopConfiguration, b Boundary) Measurements {
	length := clampMM(cfg.LengthMM)
	width := clampMM(cfg.WidthMM)

	lm := length / 1000
	wm := width / 1000

	switch b.Kind {
	case model.Rectangle, model.RoundedRect:
		return Measurements{
			AreaM2:      lm * wm,
			EdgeLengthM: 2 * (lm + wm),
		}

	case model.DEnd:
		d := math.Max(lm, wm)
		flat := lm - wm/2
		if flat < 0 {
			flat = 0
		}
		return Measurements{
			AreaM2:      lm * wm,
			EdgeLengthM: math.Pi*d + flat,
		}

	case model.Round:
		d := math.Min(lm, wm)
		return Measurements{
			AreaM2:      math.Pi * (d / 2) * (d / 2),
			EdgeLengthM: math.Pi * d,
		}

	case model.Ellipse, model.SuperEllipse:
		a := lm / 2
		bb := wm / 2
		return Measurements{
			AreaM2:      math.Pi * a * bb,
			EdgeLengthM: ramanujanPerimeter(a, bb),
		}

	case model.Custom:
		return measurePolygon(b.Outer)

	default:
		return Measurements{}
	}
}

// ramanujanPerimeter returns Ramanujan's second approximation of an ellipse
// perimeter for semi-axes a and b.
func ramanujanPerimeter(a, b float64) float64 {
	return math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b)))
}

// measurePolygon integrates area (shoelace) and perimeter over the outer
// path, with points in mm. Holes are intentionally not subtracted: the
// blank is cut from the full outer area either way.
func measurePolygon(outer model.Path) Measurements {
	n := len(outer)
	if n < 3 {
		return Measurements{}
	}

	var area2, perim float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area2 += outer[i].X*outer[j].Y - outer[j].X*outer[i].Y

		dx := outer[j].X - outer[i].X
		dy := outer[j].Y - outer[i].Y
		perim += math.Sqrt(dx*dx + dy*dy)
	}

	return Measurements{
		AreaM2:      math.Abs(area2) / 2 / 1e6,
		EdgeLengthM: perim / 1000,
	}
}

// clampMM floors a dimension at the model minimum so later divisions can
// never hit zero.
func clampMM(v float64) float64 {
	if v < model.MinDimensionMM {
		return model.MinDimensionMM
	}
	return v
}
