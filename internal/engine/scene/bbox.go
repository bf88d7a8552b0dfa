package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/math"
)

// BoundingBox is an axis-aligned box. A box whose Min exceeds its Max on any
// axis is empty; EmptyBox returns the canonical empty box.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox returns a box that contains nothing and is absorbed by Merge.
func EmptyBox() BoundingBox {
	return BoundingBox{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// NewBoundingBox returns the box spanning min and max.
func NewBoundingBox(min, max mgl32.Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// BoundsOf returns the smallest box containing every point.
func BoundsOf(points ...mgl32.Vec3) BoundingBox {
	b := EmptyBox()
	for _, p := range points {
		b = b.ExpandPoint(p)
	}
	return b
}

// IsValid reports whether the box is non-empty.
func (b BoundingBox) IsValid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent along each axis.
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns the distance from the center to a corner.
func (b BoundingBox) Radius() float32 {
	return b.Max.Sub(b.Center()).Len()
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ContainsBox reports whether o lies entirely inside b. Empty boxes are
// contained by every box.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	if !o.IsValid() {
		return true
	}
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Merge returns the smallest box containing both boxes. Merging with an empty
// box returns the other box unchanged.
func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	if !o.IsValid() {
		return b
	}
	if !b.IsValid() {
		return o
	}
	return BoundingBox{
		Min: math.MinVec3(b.Min, o.Min),
		Max: math.MaxVec3(b.Max, o.Max),
	}
}

// ExpandPoint grows the box to include p.
func (b BoundingBox) ExpandPoint(p mgl32.Vec3) BoundingBox {
	return BoundingBox{
		Min: math.MinVec3(b.Min, p),
		Max: math.MaxVec3(b.Max, p),
	}
}

// Corners returns the eight corners of the box.
func (b BoundingBox) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// Transform returns the axis-aligned box enclosing all eight corners of b
// transformed by m. An empty box stays empty.
func (b BoundingBox) Transform(m mgl32.Mat4) BoundingBox {
	if !b.IsValid() {
		return b
	}
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.ExpandPoint(math.TransformPoint(m, c))
	}
	return out
}

// SphereCube returns the cube centered on b whose half extent is the
// distance from the center to a corner, so that the result encloses b under
// any rotation.
func (b BoundingBox) SphereCube() BoundingBox {
	if !b.IsValid() {
		return b
	}
	c := b.Center()
	r := b.Radius()
	d := mgl32.Vec3{r, r, r}
	return BoundingBox{Min: c.Sub(d), Max: c.Add(d)}
}

// FlipY mirrors the box across the XZ plane.
func (b BoundingBox) FlipY() BoundingBox {
	if !b.IsValid() {
		return b
	}
	b.Min[1], b.Max[1] = -b.Max[1], -b.Min[1]
	return b
}
