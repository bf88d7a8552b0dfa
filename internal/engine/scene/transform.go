// Package scene holds the runtime scene graph of an imported model: nodes with
// local transforms, meshes as index ranges into one shared vertex buffer,
// materials, skins and the bounding volumes used for camera framing.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Transform is a translation/rotation/scale triple with a lazily composed
// matrix. Setters mark the matrix dirty; Matrix recomposes it on demand.
type Transform struct {
	translation mgl32.Vec3
	rotation    mgl32.Quat
	scale       mgl32.Vec3

	matrix mgl32.Mat4
	dirty  bool
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		matrix:   mgl32.Ident4(),
	}
}

// TransformFromMatrix decomposes m into a transform.
func TransformFromMatrix(m mgl32.Mat4) Transform {
	t, r, s := math.Decompose(m)
	tr := NewTransform()
	tr.Set(t, r, s)
	return tr
}

// Translation returns the translation component.
func (t *Transform) Translation() mgl32.Vec3 { return t.translation }

// Rotation returns the rotation component.
func (t *Transform) Rotation() mgl32.Quat { return t.rotation }

// Scale returns the scale component.
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

// SetTranslation sets the translation.
func (t *Transform) SetTranslation(v mgl32.Vec3) {
	t.translation = v
	t.dirty = true
}

// SetRotation sets the rotation.
func (t *Transform) SetRotation(q mgl32.Quat) {
	t.rotation = q
	t.dirty = true
}

// SetScale sets the scale.
func (t *Transform) SetScale(v mgl32.Vec3) {
	t.scale = v
	t.dirty = true
}

// Set replaces all three components at once.
func (t *Transform) Set(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) {
	t.translation = translation
	t.rotation = rotation
	t.scale = scale
	t.dirty = true
}

// Matrix returns Translate * Rotate * Scale.
func (t *Transform) Matrix() mgl32.Mat4 {
	if t.dirty {
		t.matrix = math.Compose(t.translation, t.rotation, t.scale)
		t.dirty = false
	}
	return t.matrix
}
