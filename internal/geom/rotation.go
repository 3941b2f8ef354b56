package geom

import "math"

// RotX turns by a radians about the world x axis.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY turns by a radians about the world y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ turns by a radians about the world z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotAxis returns the right-handed rotation by angle a about the unit axis k
// (Rodrigues: I·cos a + [k]× sin a + k kᵀ (1 - cos a)).
func RotAxis(k Vec3, a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	t := 1 - c
	x, y, z := k[0], k[1], k[2]
	return Mat3{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s,
		y*x*t + z*s, c + y*y*t, y*z*t - x*s,
		z*x*t - y*s, z*y*t + x*s, c + z*z*t,
	}
}

// axisRotation picks RotX, RotY or RotZ when the unit axis k is a world axis
// in either sense and falls back to RotAxis otherwise.
func axisRotation(k Vec3, a float64) Mat3 {
	switch k {
	case Vec3{1, 0, 0}:
		return RotX(a)
	case Vec3{-1, 0, 0}:
		return RotX(-a)
	case Vec3{0, 1, 0}:
		return RotY(a)
	case Vec3{0, -1, 0}:
		return RotY(-a)
	case Vec3{0, 0, 1}:
		return RotZ(a)
	case Vec3{0, 0, -1}:
		return RotZ(-a)
	}
	return RotAxis(k, a)
}
