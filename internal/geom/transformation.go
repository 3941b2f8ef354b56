package geom

import (
	"fmt"
	"math"
	"strings"
)

// Transformation is a 4×4 affine matrix stored row-major: element (r, c) at r*4+c.
// The top-left 3×3 block holds rotation, scale and shear; indices 3, 7 and 11
// hold the translation. Points are column vectors, so T·p applies T to p.
//
// A Transformation must not be read while Invert or Set mutates it.
type Transformation [16]float64

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Transformation) MulPoint(v Vec3) Vec3 {
	p := Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
	// Projective matrices loaded with FromArray divide through by w.
	if w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]; w != 1 && w != 0 {
		p = p.Scale(1 / w)
	}
	return p
}

// MulVector transforms a free vector (w=0): translation does not apply.
func (m Transformation) MulVector(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// Mul returns the product m · o: o is applied first, then m.
func (m Transformation) Mul(o Transformation) Transformation {
	return Multiply(m, o)
}

// Multiply returns a × b.
func Multiply(a, b Transformation) Transformation {
	var m Transformation
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Det returns the determinant of the full 4×4 matrix.
func (m Transformation) Det() float64 {
	inv := m.adjugate()
	return m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
}

// Inverse returns the matrix inverse of m, or ErrSingularMatrix.
func (m Transformation) Inverse() (Transformation, error) {
	adj := m.adjugate()
	det := m[0]*adj[0] + m[1]*adj[4] + m[2]*adj[8] + m[3]*adj[12]
	if m.singular(det) {
		return Transformation{}, fmt.Errorf("geom: inverse (det=%g): %w", det, ErrSingularMatrix)
	}
	inv := 1 / det
	for i := range adj {
		adj[i] *= inv
	}
	return adj, nil
}

// singular reports whether det is negligible against the column lengths of m.
// Affine matrices are measured on their 3×3 block so translation does not count.
func (m Transformation) singular(det float64) bool {
	n := 4
	if m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1 {
		n = 3
	}
	bound := 1.0
	for c := 0; c < n; c++ {
		var sq float64
		for r := 0; r < n; r++ {
			sq += m[r*4+c] * m[r*4+c]
		}
		bound *= math.Sqrt(sq)
	}
	return bound == 0 || math.Abs(det) <= singularEps*bound
}

// Invert replaces m with its inverse. On error m is left unchanged.
func (m *Transformation) Invert() (*Transformation, error) {
	inv, err := m.Inverse()
	if err != nil {
		return m, err
	}
	*m = inv
	return m, nil
}

// Set copies o into m and returns m.
func (m *Transformation) Set(o Transformation) *Transformation {
	*m = o
	return m
}

// Clone returns a copy of m.
func (m Transformation) Clone() Transformation {
	return m
}

// adjugate returns the transposed cofactor matrix, so m · adj = det · I.
func (m Transformation) adjugate() Transformation {
	var a Transformation
	a[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	a[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	a[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	a[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	a[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	a[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	a[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	a[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	a[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	a[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	a[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	a[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	a[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	a[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	a[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	a[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return a
}

// XAxis returns the first column of the 3×3 block. It is unit length only for rigid m.
func (m Transformation) XAxis() Vec3 { return Vec3{m[0], m[4], m[8]} }

// YAxis returns the second column of the 3×3 block.
func (m Transformation) YAxis() Vec3 { return Vec3{m[1], m[5], m[9]} }

// ZAxis returns the third column of the 3×3 block.
func (m Transformation) ZAxis() Vec3 { return Vec3{m[2], m[6], m[10]} }

// Origin returns the translation column: where the world origin lands.
func (m Transformation) Origin() Vec3 { return Vec3{m[3], m[7], m[11]} }

// Linear returns the top-left 3×3 block.
func (m Transformation) Linear() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// ToArray returns the 16 elements in row-major order.
func (m Transformation) ToArray() [16]float64 {
	return m
}

// IsIdentity checks if the matrix is approximately identity.
func (m Transformation) IsIdentity() bool {
	id := Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > IdentityTolerance || d < -IdentityTolerance {
			return false
		}
	}
	return true
}

// Equal reports whether every element of m and o differs by less than Tolerance.
func (m Transformation) Equal(o Transformation) bool {
	for i := range m {
		if !Equal(m[i], o[i]) {
			return false
		}
	}
	return true
}

// Rigid reports whether m is a proper rotation plus translation.
func (m Transformation) Rigid() bool {
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return false
	}
	l := m.Linear()
	rt := Mat3Mul(l.Transpose(), l)
	id := Mat3Identity()
	for i := range rt {
		if math.Abs(rt[i]-id[i]) > IdentityTolerance*1e3 {
			return false
		}
	}
	return l.Det() > 0
}

func (m Transformation) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%g %g %g %g", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	b.WriteByte(']')
	return b.String()
}
