package geom

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the distance below which two geometric quantities are coincident.
// A deviation of 0.0001 is "on", a deviation of 0.001 is not.
const Tolerance = 1e-3

// IdentityTolerance is the per-element slack allowed by Transformation.IsIdentity.
const IdentityTolerance = 1e-8

const (
	// zeroLen is the length below which a vector is treated as zero.
	zeroLen = 1e-12
	// singularEps bounds |det| relative to the product of the column lengths.
	singularEps = 1e-12
	// roundStep is the grid distances are snapped to before comparison with Tolerance.
	// Tolerance/roundStep must stay a whole number.
	roundStep = 1e-9
	// angleEps bounds the sine or cosine treated as zero by Parallel and Perpendicular.
	angleEps = 1e-9
	// basisEps bounds the scaled triple product of an independent basis.
	basisEps = 1e-10
)

var (
	// ErrDegenerateGeometry reports zero-length normals, directions or axes.
	ErrDegenerateGeometry = errors.New("geom: degenerate geometry")
	// ErrSingularMatrix reports an attempt to invert a non-invertible transformation.
	ErrSingularMatrix = fmt.Errorf("%w: singular matrix", ErrDegenerateGeometry)
	// ErrDegenerateBasis reports axis vectors that do not span 3D space.
	ErrDegenerateBasis = errors.New("geom: degenerate basis")
	// ErrNotNumeric reports a Tuple coordinate holding a non-numeric value.
	ErrNotNumeric = errors.New("geom: coordinate is not numeric")
	// ErrComponentCount reports a decoded triple, plane or line of the wrong length.
	ErrComponentCount = errors.New("geom: wrong number of components")
)

// Equal reports whether a and b differ by less than Tolerance.
func Equal(a, b float64) bool {
	return within(math.Abs(a - b))
}

// within reports d < Tolerance after dropping the float error that
// subtraction leaves in offsets far from the origin.
func within(d float64) bool {
	return math.Round(d/roundStep) < Tolerance/roundStep
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
