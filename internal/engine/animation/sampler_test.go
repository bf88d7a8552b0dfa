package animation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/pkg/math"
)

func TestBracket(t *testing.T) {
	s := NewSampler(InterpolationLinear, []float32{1, 2, 2, 4}, make([]float32, 4), 1)

	tests := []struct {
		name      string
		time      float32
		wantFrame int
		wantT     float32
	}{
		{"before first", 0, 0, 0},
		{"at first", 1, 0, 0},
		{"inside first interval", 1.25, 0, 0.25},
		{"skips zero-length interval", 3, 2, 0.5},
		{"at last", 4, 4, 0},
		{"after last", 9, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, param := s.Bracket(tt.time)
			assert.Equal(t, tt.wantFrame, frame)
			assert.InDelta(t, tt.wantT, param, 1e-6)
		})
	}
}

func TestBracketSkipsGapsBelowEpsilon(t *testing.T) {
	s := NewSampler(InterpolationLinear, []float32{0, 1, 1.000001, 2}, make([]float32, 4), 1)
	frame, _ := s.Bracket(1.0000005)
	assert.Equal(t, 2, frame)
}

func TestNewSamplerTruncates(t *testing.T) {
	// Three times, two translation keyframes.
	s := NewSampler(InterpolationLinear, []float32{0, 1, 2}, []float32{0, 0, 0, 1, 1, 1}, 3)
	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Times, 2)
	assert.Equal(t, float32(1), s.End())

	// Two times, three keyframes.
	s = NewSampler(InterpolationLinear, []float32{0, 1}, []float32{0, 1, 2}, 1)
	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Values, 2)

	s = NewSampler(InterpolationLinear, []float32{0}, []float32{5}, 1)
	assert.False(t, s.Valid())
}

func TestVec3Linear(t *testing.T) {
	s := NewSampler(InterpolationLinear, []float32{0, 2}, []float32{0, 0, 0, 4, -2, 8}, 3)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Vec3(-1))
	assert.Equal(t, mgl32.Vec3{1, -0.5, 2}, s.Vec3(0.5))
	assert.Equal(t, mgl32.Vec3{4, -2, 8}, s.Vec3(2))
	assert.Equal(t, mgl32.Vec3{4, -2, 8}, s.Vec3(3))
}

func TestQuatKeyframesUnchanged(t *testing.T) {
	q0 := mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0})
	q1 := mgl32.QuatRotate(1.1, mgl32.Vec3{1, 0, 0})
	q2 := mgl32.QuatRotate(2.0, mgl32.Vec3{0, 0, 1})

	var values []float32
	for _, q := range []mgl32.Quat{q0, q1, q2} {
		values = append(values, q.V[0], q.V[1], q.V[2], q.W)
	}
	s := NewSampler(InterpolationLinear, []float32{1, 2, 3}, values, 4)

	assert.Equal(t, q0, s.Quat(1))
	assert.Equal(t, q0, s.Quat(0.5))
	assert.Equal(t, q2, s.Quat(3))
	assert.Equal(t, q2, s.Quat(10))

	mid := s.Quat(1.5)
	assert.InDelta(t, 1, mid.Len(), 1e-5)
}

func TestStepInterpolation(t *testing.T) {
	s := NewSampler(InterpolationStep, []float32{0, 1, 2}, []float32{0, 10, 20}, 1)
	assert.Equal(t, []float32{0}, s.Weights(0.9, nil))
	assert.Equal(t, []float32{10}, s.Weights(1.5, nil))
	assert.Equal(t, []float32{20}, s.Weights(2, nil))
}

func TestCubicSpline(t *testing.T) {
	// in-tangent, value, out-tangent per keyframe; flat tangents.
	values := []float32{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 2, 0, 0, 0, 0, 0,
	}
	s := NewSampler(InterpolationCubicSpline, []float32{0, 1}, values, 3)
	require.Equal(t, 2, s.Len())

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Vec3(0))
	assert.True(t, math.ApproxEqualVec3(s.Vec3(0.5), mgl32.Vec3{1, 0, 0}, 1e-6))
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, s.Vec3(1))
}

func TestWeightsLinear(t *testing.T) {
	s := NewSampler(InterpolationLinear, []float32{0, 1}, []float32{0, 1, 1, 0}, 2)
	dst := make([]float32, 0, 2)
	got := s.Weights(0.25, dst)
	assert.InDeltaSlice(t, []float32{0.25, 0.75}, got, 1e-6)
}
