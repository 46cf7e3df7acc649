package model

// ShapeKind identifies one of the built-in tabletop shape families,
// or Custom for an imported outline.
type ShapeKind int

const (
	Rectangle    ShapeKind = iota // Axis-aligned rectangle
	RoundedRect                   // Rectangle with circular-arc corners
	DEnd                          // One flat end, one full semicircular end
	Round                         // Circle; length and width are kept equal
	Ellipse                       // Ellipse with semi-axes length/2, width/2
	SuperEllipse                  // Lamé curve with configurable exponent
	Custom                        // Imported outline (DXF or similar)
)

func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case RoundedRect:
		return "Rounded Rectangle"
	case DEnd:
		return "D-End"
	case Round:
		return "Round"
	case Ellipse:
		return "Ellipse"
	case SuperEllipse:
		return "Super-Ellipse"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ShapeKinds lists every shape family in display order.
var ShapeKinds = []ShapeKind{Rectangle, RoundedRect, DEnd, Round, Ellipse, SuperEllipse, Custom}

// EdgeProfile identifies the edge finishing treatment. EdgeAny is only
// meaningful as a labour-rule applicability filter, never on a configuration.
type EdgeProfile int

const (
	EdgeAny    EdgeProfile = iota // Rule filter wildcard: applies to every profile
	EdgeSquare                    // Square edge with ABS banding
	EdgeBevel                     // Painted bevel edge
)

func (e EdgeProfile) String() string {
	switch e {
	case EdgeSquare:
		return "Square (ABS banded)"
	case EdgeBevel:
		return "Painted Bevel"
	default:
		return "Any"
	}
}

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path represents a closed polygon as a sequence of 2D points.
// The path is implicitly closed: the last point connects back to the first.
type Path []Point2D

// BoundingBox returns the min and max corners of the path.
func (p Path) BoundingBox() (min, max Point2D) {
	if len(p) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: p[0].X, Y: p[0].Y}
	max = Point2D{X: p[0].X, Y: p[0].Y}
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (p Path) Translate(dx, dy float64) Path {
	result := make(Path, len(p))
	for i, pt := range p {
		result[i] = Point2D{X: pt.X + dx, Y: pt.Y + dy}
	}
	return result
}

// Dimension and parameter limits enforced by Normalize.
const (
	// MinDimensionMM is the floor applied to every linear dimension before
	// it participates in division, so downstream arithmetic never sees zero.
	MinDimensionMM = 1.0

	// MaxQuantity bounds a single configuration's quantity.
	MaxQuantity = 999

	// Super-ellipse curvature exponent bounds. An exponent of 2 degenerates
	// to an ordinary ellipse.
	MinSuperEllipseExp = 1.5
	MaxSuperEllipseExp = 8.0
)

// TabletopConfiguration holds every parameter needed to generate a tabletop
// boundary and price it. All linear dimensions are in mm.
type TabletopConfiguration struct {
	Shape           ShapeKind   `json:"shape"`
	LengthMM        float64     `json:"length_mm"`
	WidthMM         float64     `json:"width_mm"`
	ThicknessMM     float64     `json:"thickness_mm"`
	CornerRadiusMM  float64     `json:"corner_radius_mm,omitempty"`  // RoundedRect only
	SuperEllipseExp float64     `json:"super_ellipse_exp,omitempty"` // SuperEllipse only
	Edge            EdgeProfile `json:"edge"`
	Quantity        int         `json:"quantity"`
}

// NewTabletopConfiguration creates a configuration with sensible defaults
// and all invariants applied.
func NewTabletopConfiguration(shape ShapeKind, lengthMM, widthMM, thicknessMM float64, qty int) TabletopConfiguration {
	cfg := TabletopConfiguration{
		Shape:           shape,
		LengthMM:        lengthMM,
		WidthMM:         widthMM,
		ThicknessMM:     thicknessMM,
		SuperEllipseExp: 2.5,
		Edge:            EdgeSquare,
		Quantity:        qty,
	}
	cfg.Normalize()
	return cfg
}

// SetLengthMM updates the length. For the Round shape the width mirrors the
// length immediately, keeping both equal to the diameter.
func (c *TabletopConfiguration) SetLengthMM(v float64) {
	c.LengthMM = v
	if c.Shape == Round {
		c.WidthMM = v
	}
}

// SetWidthMM updates the width. For the Round shape the length mirrors the
// width immediately, keeping both equal to the diameter.
func (c *TabletopConfiguration) SetWidthMM(v float64) {
	c.WidthMM = v
	if c.Shape == Round {
		c.LengthMM = v
	}
}

// Normalize enforces the configuration invariants in place: positive
// dimension floors, the Round diameter sync, the corner radius cap, the
// super-ellipse exponent bounds, and the quantity range.
func (c *TabletopConfiguration) Normalize() {
	if c.LengthMM < MinDimensionMM {
		c.LengthMM = MinDimensionMM
	}
	if c.WidthMM < MinDimensionMM {
		c.WidthMM = MinDimensionMM
	}
	if c.ThicknessMM < MinDimensionMM {
		c.ThicknessMM = MinDimensionMM
	}

	if c.Shape == Round && c.LengthMM != c.WidthMM {
		// Both hold the diameter; the smaller wins so a shrinking update
		// is never silently discarded.
		d := c.LengthMM
		if c.WidthMM < d {
			d = c.WidthMM
		}
		c.LengthMM = d
		c.WidthMM = d
	}

	maxRadius := c.LengthMM / 2
	if c.WidthMM/2 < maxRadius {
		maxRadius = c.WidthMM / 2
	}
	if c.CornerRadiusMM > maxRadius {
		c.CornerRadiusMM = maxRadius
	}
	if c.CornerRadiusMM < 0 {
		c.CornerRadiusMM = 0
	}

	if c.SuperEllipseExp < MinSuperEllipseExp {
		c.SuperEllipseExp = MinSuperEllipseExp
	}
	if c.SuperEllipseExp > MaxSuperEllipseExp {
		c.SuperEllipseExp = MaxSuperEllipseExp
	}

	if c.Quantity < 1 {
		c.Quantity = 1
	}
	if c.Quantity > MaxQuantity {
		c.Quantity = MaxQuantity
	}

	if c.Edge == EdgeAny {
		c.Edge = EdgeSquare
	}
}

// Validate reports whether the configuration carries the numeric parameters
// its shape family requires. Unlike Normalize it rejects rather than
// repairs, so callers can distinguish bad input from a defended default.
func (c TabletopConfiguration) Validate() error {
	if c.LengthMM <= 0 || c.WidthMM <= 0 || c.ThicknessMM <= 0 {
		return ErrInvalidDimension
	}
	if c.Quantity < 1 {
		return ErrInvalidDimension
	}
	return nil
}
