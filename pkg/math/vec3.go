package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3FromFloat64 converts the first three values of v. It returns fallback
// when v is too short.
func Vec3FromFloat64(v []float64, fallback mgl32.Vec3) mgl32.Vec3 {
	if len(v) < 3 {
		return fallback
	}
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// LerpVec3 performs linear interpolation between two 3D vectors.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// LerpSlice interpolates two equally long weight slices into dst.
func LerpSlice(dst, a, b []float32, t float32) []float32 {
	dst = dst[:0]
	for i := range a {
		if i >= len(b) {
			break
		}
		dst = append(dst, a[i]+t*(b[i]-a[i]))
	}
	return dst
}

// HermiteVec3 evaluates a cubic Hermite spline between two keys. m0 and m1
// are tangents already scaled by the key interval.
func HermiteVec3(p0, m0, p1, m1 mgl32.Vec3, t float32) mgl32.Vec3 {
	h00, h10, h01, h11 := hermiteBasis(t)
	return p0.Mul(h00).Add(m0.Mul(h10)).Add(p1.Mul(h01)).Add(m1.Mul(h11))
}

// Hermite evaluates a scalar cubic Hermite spline.
func Hermite(p0, m0, p1, m1, t float32) float32 {
	h00, h10, h01, h11 := hermiteBasis(t)
	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

func hermiteBasis(t float32) (h00, h10, h01, h11 float32) {
	t2 := t * t
	t3 := t2 * t
	h00 = 2*t3 - 3*t2 + 1
	h10 = t3 - 2*t2 + t
	h01 = -2*t3 + 3*t2
	h11 = t3 - t2
	return
}

// MinVec3 returns the component-wise minimum.
func MinVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// MaxVec3 returns the component-wise maximum.
func MaxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// NormalizeOr returns v normalized, or fallback when v has (near) zero length.
func NormalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	length := v.Len()
	if length < 1e-12 || math32.IsNaN(length) || math32.IsInf(length, 0) {
		return fallback
	}
	return v.Mul(1 / length)
}

// ApproxEqualVec3 reports whether every component of a and b differs by at
// most eps. Unlike mgl32's ApproxEqualThreshold the tolerance is absolute,
// also near zero.
func ApproxEqualVec3(a, b mgl32.Vec3, eps float32) bool {
	return within(a[:], b[:], eps)
}

// ApproxEqualVec4 is ApproxEqualVec3 for four components.
func ApproxEqualVec4(a, b mgl32.Vec4, eps float32) bool {
	return within(a[:], b[:], eps)
}
