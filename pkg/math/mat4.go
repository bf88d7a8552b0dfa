// Package math provides the transform helpers shared by the scene runtime.
// Vectors, matrices and quaternions are mgl32 types; matrices are column-major
// (OpenGL compatible), so column 3 holds the translation.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ScaleEpsilon is the smallest scale component Decompose divides by.
const ScaleEpsilon float32 = 1e-8

// Compose returns Translate(t) * Rotate(r) * Scale(s).
func Compose(t mgl32.Vec3, r mgl32.Quat, s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(r.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// Decompose splits an affine matrix into translation, rotation and scale.
// The translation is the last column, the scale the length of each basis
// column, and the rotation the quaternion of the basis divided by its scale.
// A column shorter than ScaleEpsilon is rebuilt from the other two so the
// basis stays orthonormal; with two such columns any axis orthogonal to the
// remaining one is used. A mirrored basis is reported as a negative X scale.
func Decompose(m mgl32.Mat4) (t mgl32.Vec3, r mgl32.Quat, s mgl32.Vec3) {
	t = m.Col(3).Vec3()

	var axes [3]mgl32.Vec3
	var valid []int
	for i := range axes {
		col := m.Col(i).Vec3()
		s[i] = col.Len()
		if s[i] > ScaleEpsilon {
			axes[i] = col.Mul(1 / s[i])
			valid = append(valid, i)
		}
	}

	mirrored := false
	switch len(valid) {
	case 3:
		mirrored = axes[0].Cross(axes[1]).Dot(axes[2]) < 0
	case 2:
		k := 3 - valid[0] - valid[1]
		c := axes[(k+1)%3].Cross(axes[(k+2)%3])
		if l := c.Len(); l > ScaleEpsilon {
			axes[k] = c.Mul(1 / l)
		} else {
			completeAround(&axes, (k+1)%3)
		}
	case 1:
		completeAround(&axes, valid[0])
	default:
		axes = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}

	if mirrored {
		s[0] = -s[0]
		axes[0] = axes[0].Mul(-1)
	}

	basis := mgl32.Ident4()
	for i, a := range axes {
		basis.SetCol(i, a.Vec4(0))
	}
	r = mgl32.Mat4ToQuat(basis).Normalize()
	return t, r, s
}

// completeAround replaces the two axes after k with a right-handed
// orthonormal pair perpendicular to axes[k].
func completeAround(axes *[3]mgl32.Vec3, k int) {
	axes[(k+1)%3] = orthogonal(axes[k])
	axes[(k+2)%3] = axes[k].Cross(axes[(k+1)%3])
}

// orthogonal returns a unit vector perpendicular to the unit vector u.
func orthogonal(u mgl32.Vec3) mgl32.Vec3 {
	ref := mgl32.Vec3{1, 0, 0}
	if math32.Abs(u[0]) > 0.9 {
		ref = mgl32.Vec3{0, 1, 0}
	}
	return u.Cross(ref).Normalize()
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func Inverse(m mgl32.Mat4) mgl32.Mat4 {
	if m.Det() == 0 {
		return mgl32.Ident4()
	}
	return m.Inv()
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1, no
// perspective divide).
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// ClipDepth returns the z component of m * (p, 1) before the perspective
// divide.
func ClipDepth(m mgl32.Mat4, p mgl32.Vec3) float32 {
	return m.Mul4x1(p.Vec4(1)).Z()
}

// Mat4FromFloat64 converts a column-major float64 matrix.
func Mat4FromFloat64(v [16]float64) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := range v {
		m[i] = float32(v[i])
	}
	return m
}

// Mat4FromColumns converts four column arrays into a matrix.
func Mat4FromColumns(cols [4][4]float32) mgl32.Mat4 {
	var m mgl32.Mat4
	for c := range cols {
		m.SetCol(c, mgl32.Vec4(cols[c]))
	}
	return m
}

// ApproxEqual reports whether every element of a and b differs by at most eps.
func ApproxEqual(a, b mgl32.Mat4, eps float32) bool {
	return within(a[:], b[:], eps)
}

func within(a, b []float32, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
