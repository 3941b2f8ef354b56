package geom

import (
	"fmt"
	"math"
)

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 block and translation.
func FromMat3Translation(r Mat3, t Vec3) Transformation {
	return Transformation{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Translation moves by v.
func Translation(v Vec3) Transformation {
	return FromMat3Translation(Mat3Identity(), v)
}

// FromPoint moves the world origin to p. It is Translation by p's coordinates.
func FromPoint(p Vec3) Transformation {
	return Translation(p)
}

// FromArray loads 16 row-major elements without any validation.
func FromArray(a [16]float64) Transformation {
	return Transformation(a)
}

// FromSlice loads 16 row-major elements from a slice of exactly that length.
func FromSlice(a []float64) (Transformation, error) {
	if len(a) != 16 {
		return Transformation{}, fmt.Errorf("geom: transformation from %d values, want 16", len(a))
	}
	var m Transformation
	copy(m[:], a)
	return m, nil
}

// Scaling scales uniformly about the world origin.
func Scaling(s float64) Transformation {
	return ScalingXYZ(s, s, s)
}

// ScalingXYZ scales each axis independently about the world origin.
func ScalingXYZ(xs, ys, zs float64) Transformation {
	return FromMat3Translation(Mat3Diag(xs, ys, zs), Vec3{})
}

// ScalingAbout scales uniformly about the pivot p.
func ScalingAbout(p Vec3, s float64) Transformation {
	return ScalingAboutXYZ(p, s, s, s)
}

// ScalingAboutXYZ scales each axis about the pivot p:
// translate(-p), scale, translate(p).
func ScalingAboutXYZ(p Vec3, xs, ys, zs float64) Transformation {
	return Translation(p).Mul(ScalingXYZ(xs, ys, zs)).Mul(Translation(p.Neg()))
}

// Rotation turns by angle radians (right-hand rule) about the line through p along axis.
func Rotation(p, axis Vec3, angle float64) (Transformation, error) {
	if axis.IsZero() {
		return Transformation{}, fmt.Errorf("geom: rotation about %v: %w", axis, ErrDegenerateBasis)
	}
	r := axisRotation(axis.Normalized(), angle)
	// Pivot: p - R·p keeps every point of the axis fixed.
	return FromMat3Translation(r, p.Sub(r.MulVec3(p))), nil
}

// Axes maps world coordinates into the frame with the given origin and axis vectors.
// The axes become the columns of the 3×3 block; they need not be orthonormal
// but must be linearly independent.
func Axes(origin, xaxis, yaxis, zaxis Vec3) (Transformation, error) {
	if err := checkBasis(xaxis, yaxis, zaxis); err != nil {
		return Transformation{}, err
	}
	return FromMat3Translation(Mat3FromColumns(xaxis, yaxis, zaxis), origin), nil
}

// FromOriginZAxis builds a frame at origin whose z axis is zaxis (normalized).
// The x and y axes come from Vec3.ArbitraryAxes.
func FromOriginZAxis(origin, zaxis Vec3) (Transformation, error) {
	x, y, err := zaxis.ArbitraryAxes()
	if err != nil {
		return Transformation{}, err
	}
	return Axes(origin, x, y, zaxis.Normalized())
}

// FromOriginXY builds a frame at origin from x and y axes; z is x × y.
func FromOriginXY(origin, xaxis, yaxis Vec3) (Transformation, error) {
	return Axes(origin, xaxis, yaxis, xaxis.Cross(yaxis))
}

func checkBasis(x, y, z Vec3) error {
	lx, ly, lz := x.Len(), y.Len(), z.Len()
	if lx < zeroLen || ly < zeroLen || lz < zeroLen {
		return fmt.Errorf("geom: axes %v %v %v: zero axis: %w", x, y, z, ErrDegenerateBasis)
	}
	if math.Abs(x.Dot(y.Cross(z))) <= basisEps*lx*ly*lz {
		return fmt.Errorf("geom: axes %v %v %v: not independent: %w", x, y, z, ErrDegenerateBasis)
	}
	return nil
}
