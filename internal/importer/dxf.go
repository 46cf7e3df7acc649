package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/tableforge/tableforge/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed paths.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// OutlineResult holds an imported custom outline plus any non-fatal notes
// gathered while reading the drawing.
type OutlineResult struct {
	Outline  model.CustomOutline
	Warnings []string
}

// ImportDXF reads a DXF drawing and builds a CustomOutline from its closed
// shapes (LWPOLYLINE, CIRCLE, or chains of connected LINEs/ARCs). The
// largest closed shape becomes the outer boundary; every other closed shape
// is treated as a hole. The drawing's units are assumed to be mm.
func ImportDXF(path string) (OutlineResult, error) {
	result := OutlineResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		return result, fmt.Errorf("cannot open DXF file: %w", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return result, fmt.Errorf("%w: DXF file contains no entities", model.ErrInvalidOutline)
	}

	var paths []model.Path
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			p := lwPolylineToPath(e)
			if len(p) >= 3 {
				paths = append(paths, p)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			paths = append(paths, circleToPath(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, chained := range chainSegments(segments, 0.01) {
		if len(chained) >= 3 {
			paths = append(paths, chained)
		}
	}

	if len(paths) == 0 {
		return result, fmt.Errorf("%w: no closed shapes found in DXF file", model.ErrInvalidOutline)
	}

	// Largest shape is the tabletop boundary; the rest are holes.
	sort.Slice(paths, func(i, j int) bool {
		return pathArea(paths[i]) > pathArea(paths[j])
	})

	outline, err := model.NewCustomOutline(paths, "mm")
	if err != nil {
		return result, err
	}
	if len(outline.Holes) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Imported %d inner shape(s) as holes", len(outline.Holes)))
	}

	result.Outline = outline
	return result, nil
}

// lwPolylineToPath converts a DXF LWPOLYLINE entity to a Path.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToPath(lw *entity.LwPolyline) model.Path {
	var path model.Path

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point2D{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			// This vertex has a bulge: interpolate an arc to the next vertex
			nextIdx := (i + 1) % len(lw.Vertices)
			next := model.Point2D{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			// Add all but the last point (next vertex will be added naturally)
			path = append(path, arcPts[:len(arcPts)-1]...)
		} else {
			path = append(path, current)
		}
	}

	return path
}

// bulgeArcPoints generates points along an arc defined by two endpoints and
// a DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 model.Point2D, bulge float64, numSegments int) model.Path {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return model.Path{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Arc center sits on the perpendicular from the chord midpoint
	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)

	if bulge < 0 {
		// Clockwise arc
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		// Counter-clockwise arc
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	var pts model.Path
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point2D{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToPath approximates a circle as a regular polygon.
func circleToPath(c *entity.Circle, numSegments int) model.Path {
	path := make(model.Path, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		path[i] = model.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return path
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point2D {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point2D, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []model.Point2D) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed paths.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) []model.Path {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var paths []model.Path

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point2D{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Drop the duplicate closing point on a closed chain
		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
		}

		if len(chain) >= 3 {
			paths = append(paths, model.Path(chain))
		}
	}

	return paths
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// pathArea computes the absolute area of a polygon using the shoelace formula.
func pathArea(p model.Path) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X * p[j].Y
		area -= p[j].X * p[i].Y
	}
	return math.Abs(area) / 2
}
