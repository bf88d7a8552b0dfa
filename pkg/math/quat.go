package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// QuatFromXYZW builds a quaternion from (x, y, z, w) components, w being the
// scalar part.
func QuatFromXYZW(x, y, z, w float32) mgl32.Quat {
	return mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}
}

// QuatFromArray builds a quaternion from an [x, y, z, w] array.
func QuatFromArray(v [4]float32) mgl32.Quat {
	return QuatFromXYZW(v[0], v[1], v[2], v[3])
}

// QuatVec4 returns the quaternion as an [x, y, z, w] vector.
func QuatVec4(q mgl32.Quat) mgl32.Vec4 {
	return mgl32.Vec4{q.V[0], q.V[1], q.V[2], q.W}
}

// Slerp performs shortest-arc spherical linear interpolation between two
// quaternions. t should be in range [0, 1]; the endpoints are returned
// unchanged.
func Slerp(q, other mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}

	dot := q.Dot(other)

	// If dot is negative, negate one quaternion to take the shorter path
	if dot < 0 {
		other = other.Scale(-1)
		dot = -dot
	}

	// Nearly parallel: normalized lerp avoids dividing by sin(~0)
	if dot > 0.9995 {
		return q.Add(other.Sub(q).Scale(t)).Normalize()
	}

	theta0 := math32.Acos(dot)
	theta := theta0 * t
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return q.Scale(s0).Add(other.Scale(s1))
}

// HermiteQuat evaluates a cubic Hermite spline between two quaternion keys and
// normalizes the result. m0 and m1 are tangents already scaled by the key
// interval.
func HermiteQuat(p0, m0, p1, m1 mgl32.Quat, t float32) mgl32.Quat {
	h00, h10, h01, h11 := hermiteBasis(t)
	v := QuatVec4(p0).Mul(h00).
		Add(QuatVec4(m0).Mul(h10)).
		Add(QuatVec4(p1).Mul(h01)).
		Add(QuatVec4(m1).Mul(h11))
	return QuatFromXYZW(v[0], v[1], v[2], v[3]).Normalize()
}

// ApproxEqualQuat reports whether a and b describe the same rotation within
// an absolute tolerance of eps per component. q and -q compare equal.
func ApproxEqualQuat(a, b mgl32.Quat, eps float32) bool {
	va, vb := QuatVec4(a), QuatVec4(b)
	return ApproxEqualVec4(va, vb, eps) || ApproxEqualVec4(va, vb.Mul(-1), eps)
}
