package geom

// decomposition splits a 3×3 block into rotation · stretch (QR by Gram-Schmidt).
// The stretch is upper triangular and carries scale, shear and any reflection.
type decomposition struct {
	rot     Quat
	stretch Mat3
}

func decompose(l Mat3) (decomposition, bool) {
	c0, c1, c2 := l.Col(0), l.Col(1), l.Col(2)

	q0 := c0.Normalized()
	u1 := c1.Sub(q0.Scale(q0.Dot(c1)))
	q1 := u1.Normalized()
	u2 := c2.Sub(q0.Scale(q0.Dot(c2))).Sub(q1.Scale(q1.Dot(c2)))
	q2 := u2.Normalized()
	if c0.IsZero() || u1.IsZero() || u2.IsZero() {
		return decomposition{}, false
	}

	q := Mat3FromColumns(q0, q1, q2)
	k := Mat3Mul(q.Transpose(), l)
	if q.Det() < 0 {
		// Move the reflection into the stretch so q is a proper rotation.
		q = Mat3FromColumns(q0, q1, q2.Neg())
		k[6], k[7], k[8] = -k[6], -k[7], -k[8]
	}
	return decomposition{rot: Mat3ToQuat(q), stretch: k}, true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate blends from a (t=0) to b (t=1). Translation and stretch blend
// linearly; rotation follows a spherical path so rigid inputs give rigid
// results. t outside [0, 1] extrapolates. Blocks that cannot be decomposed
// fall back to an element-wise blend.
func Interpolate(a, b Transformation, t float64) Transformation {
	da, okA := decompose(a.Linear())
	db, okB := decompose(b.Linear())
	if !okA || !okB {
		var m Transformation
		for i := range m {
			m[i] = lerp(a[i], b[i], t)
		}
		return m
	}

	var k Mat3
	for i := range k {
		k[i] = lerp(da.stretch[i], db.stretch[i], t)
	}
	r := QuatToMat3(Slerp(da.rot, db.rot, t))
	origin := Vec3{
		lerp(a[3], b[3], t),
		lerp(a[7], b[7], t),
		lerp(a[11], b[11], t),
	}

	m := FromMat3Translation(Mat3Mul(r, k), origin)
	for i := 12; i < 16; i++ {
		m[i] = lerp(a[i], b[i], t)
	}
	return m
}
