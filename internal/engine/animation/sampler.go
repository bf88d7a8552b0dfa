// Package animation evaluates keyframed clips onto a scene graph.
package animation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Epsilon is the smallest keyframe gap and clip duration that are evaluated.
const Epsilon float32 = 1e-5

// Channel selects the node property a sampler drives.
type Channel uint8

// Animated channels.
const (
	ChannelTranslation Channel = iota
	ChannelRotation
	ChannelScale
	ChannelWeights

	channelCount
)

// String returns the glTF path name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelTranslation:
		return "translation"
	case ChannelRotation:
		return "rotation"
	case ChannelScale:
		return "scale"
	case ChannelWeights:
		return "weights"
	default:
		return "unknown"
	}
}

// Interpolation is a sampler's keyframe interpolation mode.
type Interpolation uint8

// Interpolation modes.
const (
	InterpolationLinear Interpolation = iota
	InterpolationStep
	InterpolationCubicSpline
)

// Sampler holds sorted keyframe times and their values. Each keyframe stores
// Width floats; cubic spline keyframes store in-tangent, value and
// out-tangent, three times Width in total.
type Sampler struct {
	Interpolation Interpolation
	Times         []float32
	Values        []float32
	Width         int
}

// NewSampler returns a sampler over times and values. When the number of
// value keyframes differs from the number of times, both are truncated to
// the shorter length.
func NewSampler(interp Interpolation, times, values []float32, width int) Sampler {
	s := Sampler{Interpolation: interp, Width: width}
	if width <= 0 {
		return s
	}
	n := len(values) / s.stride()
	if len(times) < n {
		n = len(times)
	}
	s.Times = times[:n]
	s.Values = values[:n*s.stride()]
	return s
}

func (s *Sampler) stride() int {
	if s.Interpolation == InterpolationCubicSpline {
		return 3 * s.Width
	}
	return s.Width
}

// Len returns the number of keyframes.
func (s *Sampler) Len() int {
	if s.Width <= 0 {
		return 0
	}
	n := len(s.Values) / s.stride()
	if len(s.Times) < n {
		n = len(s.Times)
	}
	return n
}

// Valid reports whether the sampler has at least two keyframes.
func (s *Sampler) Valid() bool {
	return s.Len() >= 2
}

// End returns the time of the last keyframe, or 0 when empty.
func (s *Sampler) End() float32 {
	if n := s.Len(); n > 0 {
		return s.Times[n-1]
	}
	return 0
}

// Bracket locates the keyframe interval containing time. It returns the
// index of the interval's first keyframe and the normalized position inside
// it. Times at or before the first keyframe yield (0, 0); times at or past
// the last keyframe yield (Len(), 0). Intervals no longer than Epsilon are
// skipped.
func (s *Sampler) Bracket(time float32) (frame int, t float32) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	if time <= s.Times[0] {
		return 0, 0
	}
	for k := 1; k < n; k++ {
		dt := s.Times[k] - s.Times[k-1]
		if time < s.Times[k] && dt > Epsilon {
			return k - 1, (time - s.Times[k-1]) / dt
		}
	}
	return n, 0
}

// key returns the value part of keyframe k.
func (s *Sampler) key(k int) []float32 {
	off := k * s.stride()
	if s.Interpolation == InterpolationCubicSpline {
		off += s.Width
	}
	return s.Values[off : off+s.Width]
}

// inTangent and outTangent are only meaningful for cubic spline samplers.
func (s *Sampler) inTangent(k int) []float32 {
	off := k * s.stride()
	return s.Values[off : off+s.Width]
}

func (s *Sampler) outTangent(k int) []float32 {
	off := k*s.stride() + 2*s.Width
	return s.Values[off : off+s.Width]
}

// segment resolves the keyframes used at time. last is true when the last
// keyframe applies verbatim.
func (s *Sampler) segment(time float32) (frame int, t float32, last bool) {
	frame, t = s.Bracket(time)
	n := s.Len()
	if frame+1 >= n {
		return n - 1, 0, true
	}
	if s.Interpolation == InterpolationStep {
		return frame, 0, true
	}
	return frame, t, false
}

func (s *Sampler) interval(frame int) float32 {
	return s.Times[frame+1] - s.Times[frame]
}

// Vec3 evaluates a translation or scale sampler.
func (s *Sampler) Vec3(time float32) mgl32.Vec3 {
	frame, t, last := s.segment(time)
	if last {
		return vec3(s.key(frame))
	}
	p0, p1 := vec3(s.key(frame)), vec3(s.key(frame+1))
	if s.Interpolation == InterpolationCubicSpline {
		dt := s.interval(frame)
		m0 := vec3(s.outTangent(frame)).Mul(dt)
		m1 := vec3(s.inTangent(frame + 1)).Mul(dt)
		return math.HermiteVec3(p0, m0, p1, m1, t)
	}
	return math.LerpVec3(p0, p1, t)
}

// Quat evaluates a rotation sampler. Linear rotation uses shortest-arc
// spherical interpolation.
func (s *Sampler) Quat(time float32) mgl32.Quat {
	frame, t, last := s.segment(time)
	if last {
		return quat(s.key(frame))
	}
	q0, q1 := quat(s.key(frame)), quat(s.key(frame+1))
	if s.Interpolation == InterpolationCubicSpline {
		dt := s.interval(frame)
		m0 := quat(s.outTangent(frame)).Scale(dt)
		m1 := quat(s.inTangent(frame + 1)).Scale(dt)
		return math.HermiteQuat(q0, m0, q1, m1, t)
	}
	return math.Slerp(q0, q1, t)
}

// Weights evaluates a morph weight sampler into dst.
func (s *Sampler) Weights(time float32, dst []float32) []float32 {
	frame, t, last := s.segment(time)
	if last {
		return append(dst[:0], s.key(frame)...)
	}
	a, b := s.key(frame), s.key(frame+1)
	if s.Interpolation == InterpolationCubicSpline {
		dt := s.interval(frame)
		m0, m1 := s.outTangent(frame), s.inTangent(frame+1)
		dst = dst[:0]
		for i := range a {
			dst = append(dst, math.Hermite(a[i], m0[i]*dt, b[i], m1[i]*dt, t))
		}
		return dst
	}
	return math.LerpSlice(dst, a, b, t)
}

func vec3(v []float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func quat(v []float32) mgl32.Quat {
	return math.QuatFromXYZW(v[0], v[1], v[2], v[3])
}
