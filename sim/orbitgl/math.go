package orbitgl

import "math"

// Vec3 is an immutable 3D vector in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]float64

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mat4RotateX rotates about the X axis:
// y' = y·cos − z·sin, z' = y·sin + z·cos.
func Mat4RotateX(rad float64) Mat4 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// MulPoint applies m to p as a point (w = 1).
func (m Mat4) MulPoint(p Vec3) Vec3 {
	r := Mat4MulV4(m, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// a tiny negative remainder plus 360 can round up to exactly 360.
	if a >= 360 {
		a = 0
	}
	return a
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
