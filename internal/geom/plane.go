package geom

import (
	"fmt"
	"math"
)

// Plane is an (origin, normal) pair. The normal need not be unit length.
type Plane [2]Vec3

// NewPlane builds the plane through origin with the given normal.
func NewPlane(origin, normal Vec3) Plane {
	return Plane{origin, normal}
}

func (pl Plane) Origin() Vec3 { return pl[0] }
func (pl Plane) Normal() Vec3 { return pl[1] }

// PlaneThrough returns the plane containing three points, with normal
// (p2-p1) × (p3-p1).
func PlaneThrough(p1, p2, p3 Vec3) (Plane, error) {
	n := p1.VectorTo(p2).Cross(p1.VectorTo(p3))
	if n.IsZero() {
		return Plane{}, fmt.Errorf("geom: plane through %v %v %v: collinear: %w", p1, p2, p3, ErrDegenerateGeometry)
	}
	return Plane{p1, n}, nil
}

// PlaneFromCoefficients returns the plane ax + by + cz + d = 0.
func PlaneFromCoefficients(a, b, c, d float64) (Plane, error) {
	n := Vec3{a, b, c}
	l2 := n.Dot(n)
	if l2 < zeroLen*zeroLen {
		return Plane{}, fmt.Errorf("geom: plane %g %g %g %g: %w", a, b, c, d, ErrDegenerateGeometry)
	}
	// Closest point of the plane to the world origin.
	return Plane{n.Scale(-d / l2), n}, nil
}

// Coefficients returns a, b, c, d with (a, b, c) the unit normal and
// ax + by + cz + d = 0 on the plane.
func (pl Plane) Coefficients() (a, b, c, d float64, err error) {
	n := pl[1]
	if n.IsZero() {
		return 0, 0, 0, 0, fmt.Errorf("geom: coefficients of plane %v: %w", pl, ErrDegenerateGeometry)
	}
	u := n.Normalized()
	return u[0], u[1], u[2], -u.Dot(pl[0]), nil
}

// ProjectToPlane returns the foot of the perpendicular from p to pl.
// It fails only when the normal is zero.
func (p Vec3) ProjectToPlane(pl Plane) (Vec3, error) {
	n := pl[1]
	if n.IsZero() {
		return p, fmt.Errorf("geom: project %v to plane with normal %v: %w", p, n, ErrDegenerateGeometry)
	}
	u := n.Normalized()
	return p.Sub(u.Scale(pl[0].VectorTo(p).Dot(u))), nil
}

// DistanceToPlane returns the unsigned distance from p to pl.
// A plane with a zero normal is treated as its origin point.
func (p Vec3) DistanceToPlane(pl Plane) float64 {
	n := pl[1]
	if n.IsZero() {
		return p.Distance(pl[0])
	}
	return math.Abs(pl[0].VectorTo(p).Dot(n.Normalized()))
}

// OnPlane reports whether p lies within Tolerance of pl.
func (p Vec3) OnPlane(pl Plane) bool {
	return within(p.DistanceToPlane(pl))
}
