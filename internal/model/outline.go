package model

import "fmt"

// CustomOutline is an imported closed outline in its canonical form: the
// outer path first, any holes after it, all paths translated so the outer
// bounding-box centroid sits at the origin. It is produced once at import
// time and treated as immutable until replaced by a new upload.
type CustomOutline struct {
	Unit  string  `json:"unit"` // declared linear unit of the source file, e.g. "mm"
	Outer Path    `json:"outer"`
	Holes []Path  `json:"holes,omitempty"`
	Min   Point2D `json:"min"` // bounding box of the outer path, post-centering
	Max   Point2D `json:"max"`
}

// NewCustomOutline normalizes an externally supplied polygon set into a
// CustomOutline. The first path is the outer boundary, any subsequent paths
// are holes. It fails with ErrInvalidOutline when the outer path has fewer
// than 3 points or its bounding box is degenerate.
func NewCustomOutline(paths []Path, unit string) (CustomOutline, error) {
	if len(paths) == 0 || len(paths[0]) < 3 {
		return CustomOutline{}, fmt.Errorf("%w: outer path needs at least 3 points", ErrInvalidOutline)
	}

	outer := paths[0]
	min, max := outer.BoundingBox()
	if max.X-min.X <= 0 || max.Y-min.Y <= 0 {
		return CustomOutline{}, fmt.Errorf("%w: degenerate bounding box (%.2f x %.2f)",
			ErrInvalidOutline, max.X-min.X, max.Y-min.Y)
	}

	// Center on the bounding-box centroid of the outer path. Holes move by
	// the same offset so they stay registered against the outer boundary.
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2

	out := CustomOutline{
		Unit:  unit,
		Outer: outer.Translate(-cx, -cy),
	}
	for _, h := range paths[1:] {
		if len(h) < 3 {
			continue
		}
		out.Holes = append(out.Holes, h.Translate(-cx, -cy))
	}
	out.Min, out.Max = out.Outer.BoundingBox()
	return out, nil
}

// WidthMM returns the bounding-box extent along X.
func (o CustomOutline) WidthMM() float64 {
	return o.Max.X - o.Min.X
}

// HeightMM returns the bounding-box extent along Y.
func (o CustomOutline) HeightMM() float64 {
	return o.Max.Y - o.Min.Y
}

// IsZero reports whether the outline is absent or unusable.
func (o CustomOutline) IsZero() bool {
	return len(o.Outer) < 3
}

// ApplyTo overwrites the configuration's length and width with the
// outline's bounding-box dimensions. While a custom shape is active the
// imported geometry owns the dimensions, overriding any slider-set values.
func (o CustomOutline) ApplyTo(cfg *TabletopConfiguration) {
	cfg.LengthMM = o.WidthMM()
	cfg.WidthMM = o.HeightMM()
	cfg.Normalize()
}
