package geom

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component point or vector (value type, stack-allocated).
// Whether it is a position or a displacement depends on the operation.
type Vec3 [3]float64

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromArray reads the translation column of 16 row-major transformation values.
func Vec3FromArray(a [16]float64) Vec3 {
	return FromArray(a).Origin()
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// SetX assigns the x component in place.
func (v *Vec3) SetX(x float64) *Vec3 {
	v[0] = x
	return v
}

// SetY assigns the y component in place.
func (v *Vec3) SetY(y float64) *Vec3 {
	v[1] = y
	return v
}

// SetZ assigns the z component in place.
func (v *Vec3) SetZ(z float64) *Vec3 {
	v[2] = z
	return v
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
// Parallel or zero inputs yield the zero vector.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// IsZero reports whether v is too short to have a direction.
func (v Vec3) IsZero() bool {
	return v.Len() < zeroLen
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < zeroLen {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Normalize scales v to unit length in place. The zero vector stays zero.
func (v *Vec3) Normalize() *Vec3 {
	*v = v.Normalized()
	return v
}

// Offset moves the point v by d in place.
func (v *Vec3) Offset(d Vec3) *Vec3 {
	*v = v.Add(d)
	return v
}

// Transform replaces the point v with t applied to (x, y, z, 1).
func (v *Vec3) Transform(t Transformation) *Vec3 {
	*v = t.MulPoint(*v)
	return v
}

// VectorTo returns the displacement from point p to point q.
func (p Vec3) VectorTo(q Vec3) Vec3 {
	return q.Sub(p)
}

// Distance returns the Euclidean distance between points p and q.
func (p Vec3) Distance(q Vec3) float64 {
	return p.VectorTo(q).Len()
}

// Equal reports whether p and q are closer than Tolerance.
func (p Vec3) Equal(q Vec3) bool {
	return within(p.Distance(q))
}

// AngleBetween returns the angle in radians between a and b, in [0, π].
// It is 0 when either vector is zero.
func (a Vec3) AngleBetween(b Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < zeroLen || lb < zeroLen {
		return 0
	}
	c := a.Dot(b) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Parallel reports whether a and b point along the same line, either sense.
func (a Vec3) Parallel(b Vec3) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.Normalized().Cross(b.Normalized()).Len() < angleEps
}

// Perpendicular reports whether a and b are at right angles.
func (a Vec3) Perpendicular(b Vec3) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return math.Abs(a.Normalized().Dot(b.Normalized())) < angleEps
}

// ArbitraryAxes returns unit x and y axes completing a right-handed frame with z.
//
// It uses the CAD arbitrary axis rule: when z is within 1/64 of the world Z axis
// the x axis is Wy × z, otherwise Wz × z. y is z × x.
func (z Vec3) ArbitraryAxes() (Vec3, Vec3, error) {
	if z.IsZero() {
		return Vec3{}, Vec3{}, fmt.Errorf("geom: arbitrary axes of %v: %w", z, ErrDegenerateBasis)
	}
	n := z.Normalized()
	const limit = 1.0 / 64
	var x Vec3
	if math.Abs(n[0]) < limit && math.Abs(n[1]) < limit {
		x = Vec3{0, 1, 0}.Cross(n)
	} else {
		x = Vec3{0, 0, 1}.Cross(n)
	}
	x = x.Normalized()
	return x, n.Cross(x), nil
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
