package geom

import "fmt"

// Line is an (origin, direction) pair. The direction need not be unit length.
type Line [2]Vec3

// NewLine builds the line through origin along direction.
func NewLine(origin, direction Vec3) Line {
	return Line{origin, direction}
}

func (ln Line) Origin() Vec3    { return ln[0] }
func (ln Line) Direction() Vec3 { return ln[1] }

// LineThrough returns the line from p towards q.
func LineThrough(p, q Vec3) (Line, error) {
	d := p.VectorTo(q)
	if d.IsZero() {
		return Line{}, fmt.Errorf("geom: line through %v %v: coincident points: %w", p, q, ErrDegenerateGeometry)
	}
	return Line{p, d}, nil
}

// offset returns the component of (p - origin) perpendicular to the line.
func (ln Line) offset(p Vec3) Vec3 {
	u := ln[1].Normalized()
	rel := ln[0].VectorTo(p)
	return rel.Sub(u.Scale(rel.Dot(u)))
}

// ProjectToLine returns the point of ln closest to p.
// It fails only when the direction is zero.
func (p Vec3) ProjectToLine(ln Line) (Vec3, error) {
	d := ln[1]
	if d.IsZero() {
		return p, fmt.Errorf("geom: project %v to line with direction %v: %w", p, d, ErrDegenerateGeometry)
	}
	u := d.Normalized()
	return ln[0].Add(u.Scale(ln[0].VectorTo(p).Dot(u))), nil
}

// DistanceToLine returns the distance from p to ln.
// A line with a zero direction is treated as its origin point.
func (p Vec3) DistanceToLine(ln Line) float64 {
	if ln[1].IsZero() {
		return p.Distance(ln[0])
	}
	return ln.offset(p).Len()
}

// OnLine reports whether p lies within Tolerance of ln.
func (p Vec3) OnLine(ln Line) bool {
	return within(p.DistanceToLine(ln))
}
