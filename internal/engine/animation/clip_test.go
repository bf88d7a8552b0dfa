package animation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// skeleton builds a root node skinned to its single child joint, with a clip
// moving the child from the origin to (1,0,0) over one second.
func skeleton(t *testing.T) (*scene.Scene, *Clip) {
	t.Helper()
	s := scene.New()
	root := scene.NewNode(0, "root")
	root.Transform.SetTranslation(mgl32.Vec3{0, 1, 0})
	child := scene.NewNode(1, "child")
	root.AddChild(child)
	s.Nodes = []*scene.Node{root, child}
	s.Roots = []*scene.Node{root}

	skin := scene.NewSkin("skin", []int{1}, []mgl32.Mat4{mgl32.Translate3D(0, -0.5, 0)})
	s.Skins = []*scene.Skin{skin}
	root.Skin = 0

	var tr Track
	tr.Node = 1
	tr.Samplers[ChannelTranslation] = NewSampler(InterpolationLinear,
		[]float32{0, 1}, []float32{0, 0, 0, 1, 0, 0}, 3)
	return s, NewClip("move", []Track{tr})
}

func TestTwoNodeSkeleton(t *testing.T) {
	s, clip := skeleton(t)
	require.Equal(t, float32(1), clip.Duration)

	clip.Evaluate(s, 0.5)
	s.UpdateJoints()

	root, child := s.Node(0), s.Node(1)
	assert.True(t, math.ApproxEqualVec3(child.Transform.Translation(), mgl32.Vec3{0.5, 0, 0}, 1e-6))

	want := root.WorldMatrix().Inv().Mul4(child.WorldMatrix()).Mul4(s.Skins[0].InverseBindMatrices[0])
	got := s.Skins[0].JointMatrices[0]
	assert.True(t, math.ApproxEqual(got, want, 1e-5))
	assert.True(t, math.ApproxEqual(got, mgl32.Translate3D(0.5, -0.5, 0), 1e-5))
}

func TestEvaluateIdempotent(t *testing.T) {
	s, clip := skeleton(t)

	clip.Evaluate(s, 0.3)
	first := s.Node(1).LocalMatrix()
	clip.Evaluate(s, 0.3)
	assert.Equal(t, first, s.Node(1).LocalMatrix())
}

func TestEvaluateWrapsByDuration(t *testing.T) {
	s, clip := skeleton(t)

	clip.Evaluate(s, 0.25)
	want := s.Node(1).LocalMatrix()

	for _, time := range []float32{1.25, 3.25, -0.75} {
		clip.Evaluate(s, time)
		assert.True(t, math.ApproxEqual(s.Node(1).LocalMatrix(), want, 1e-5), "time %v", time)
	}
}

func TestEvaluateKeepsBaseMatrix(t *testing.T) {
	s, clip := skeleton(t)
	s.Node(1).Base = mgl32.Scale3D(2, 2, 2)

	clip.Evaluate(s, 0.5)
	want := mgl32.Translate3D(0.5, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	assert.True(t, math.ApproxEqual(s.Node(1).LocalMatrix(), want, 1e-5))
}

func TestEvaluateShortClipIsNoop(t *testing.T) {
	s := scene.New()
	n := scene.NewNode(0, "n")
	s.Nodes = []*scene.Node{n}
	s.Roots = s.Nodes

	var tr Track
	tr.Samplers[ChannelTranslation] = NewSampler(InterpolationLinear,
		[]float32{0, 0}, []float32{0, 0, 0, 5, 5, 5}, 3)
	clip := NewClip("still", []Track{tr})

	clip.Evaluate(s, 0)
	assert.Equal(t, mgl32.Vec3{}, n.Transform.Translation())
}

func TestEvaluateIgnoresUnknownNodes(t *testing.T) {
	s, clip := skeleton(t)
	clip.Tracks[0].Node = 42
	assert.NotPanics(t, func() { clip.Evaluate(s, 0.5) })
	assert.Equal(t, mgl32.Vec3{}, s.Node(1).Transform.Translation())
}

func TestEvaluateWeights(t *testing.T) {
	s := scene.New()
	n := scene.NewNode(0, "morph")
	s.Nodes = []*scene.Node{n}
	s.Roots = s.Nodes

	var tr Track
	tr.Samplers[ChannelWeights] = NewSampler(InterpolationLinear,
		[]float32{0, 2}, []float32{0, 1, 1, 0}, 2)
	NewClip("blink", []Track{tr}).Evaluate(s, 1)

	assert.InDeltaSlice(t, []float32{0.5, 0.5}, n.Weights, 1e-6)
}

func TestClipTrackLookup(t *testing.T) {
	_, clip := skeleton(t)
	assert.NotNil(t, clip.Track(1))
	assert.Nil(t, clip.Track(0))
	assert.Equal(t, "rotation", ChannelRotation.String())
}
