// Package picking provides ray casting against the bounds of a scene.
package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay converts viewport pixel coordinates to a world-space ray.
// viewProj is the matrix the frame was drawn with.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj mgl32.Mat4) Ray {
	// Normalized device coords, Y up
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	inv := math.Inverse(viewProj)
	near := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return Ray{Origin: near, Direction: math.NormalizeOr(far.Sub(near), mgl32.Vec3{0, 0, -1})}
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p[3] != 0 {
		return p.Vec3().Mul(1 / p[3])
	}
	return p.Vec3()
}

// IntersectBox tests the ray against an axis-aligned box using the slab
// method. It returns the entry distance, or the exit distance when the ray
// starts inside the box.
func (r Ray) IntersectBox(box scene.BoundingBox) (t float32, hit bool) {
	if !box.IsValid() {
		return 0, false
	}
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Hit is the result of a successful pick.
type Hit struct {
	Node     *scene.Node
	Distance float32
	Point    mgl32.Vec3
}

// Pick returns the mesh node whose own world-space bounds the ray enters
// first. Descendant bounds are not merged in.
func Pick(s *scene.Scene, r Ray) (Hit, bool) {
	var best Hit
	found := false
	s.Walk(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		t, ok := r.IntersectBox(n.Bounds.Transform(n.WorldMatrix()))
		if !ok || (found && t >= best.Distance) {
			return
		}
		best = Hit{Node: n, Distance: t, Point: r.At(t)}
		found = true
	})
	return best, found
}
