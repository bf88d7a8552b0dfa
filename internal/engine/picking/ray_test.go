package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

func unitBox() scene.BoundingBox {
	return scene.NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
}

func TestIntersectBox(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"front", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}}, true, 4},
		{"inside", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}}, true, 1},
		{"behind", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}}, false, 0},
		{"parallel outside", Ray{mgl32.Vec3{0, 3, 5}, mgl32.Vec3{0, 0, -1}}, false, 0},
		{"miss", Ray{mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0, 0, -1}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectBox(unitBox())
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.wantT, got, 1e-6)
			}
		})
	}
}

func TestIntersectInvalidBox(t *testing.T) {
	_, hit := Ray{Direction: mgl32.Vec3{0, 0, -1}}.IntersectBox(scene.EmptyBox())
	assert.False(t, hit)
}

func TestScreenToRay(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 100)
	vp := proj.Mul4(view)

	r := ScreenToRay(400, 200, 800, 400, vp)
	assert.True(t, math.ApproxEqualVec3(r.Direction, mgl32.Vec3{0, 0, -1}, 1e-4), "direction %v", r.Direction)
	assert.InDelta(t, 9.9, r.Origin[2], 1e-3)

	// Left edge of the viewport points left.
	r = ScreenToRay(0, 200, 800, 400, vp)
	assert.Less(t, r.Direction[0], float32(0))
}

func TestPick(t *testing.T) {
	s := scene.New()
	near := scene.NewNode(0, "near")
	near.Mesh = &scene.Mesh{}
	near.Bounds = unitBox()
	near.Transform.SetTranslation(mgl32.Vec3{0, 0, 3})

	far := scene.NewNode(1, "far")
	far.Mesh = &scene.Mesh{}
	far.Bounds = unitBox()

	group := scene.NewNode(2, "group")
	group.AddChild(near)
	s.Nodes = []*scene.Node{near, far, group}
	s.Roots = []*scene.Node{far, group}

	hit, ok := Pick(s, Ray{mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}})
	require.True(t, ok)
	assert.Same(t, near, hit.Node)
	assert.InDelta(t, 6, hit.Distance, 1e-5)
	assert.True(t, math.ApproxEqualVec3(hit.Point, mgl32.Vec3{0, 0, 4}, 1e-5))

	_, ok = Pick(s, Ray{mgl32.Vec3{0, 10, 10}, mgl32.Vec3{0, 0, -1}})
	assert.False(t, ok)
}
