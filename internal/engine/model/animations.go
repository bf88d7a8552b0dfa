package model

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/animation"
)

func (im *importer) loadAnimations() []*animation.Clip {
	clips := make([]*animation.Clip, 0, len(im.doc.Animations))
	for i, src := range im.doc.Animations {
		if src == nil {
			continue
		}
		clips = append(clips, im.loadAnimation(i, src))
	}
	return clips
}

// loadAnimation groups the channels of one animation into per-node tracks.
// Channels that cannot be read are skipped.
func (im *importer) loadAnimation(ai int, src *gltf.Animation) *animation.Clip {
	var tracks []animation.Track
	trackFor := func(node int) *animation.Track {
		for i := range tracks {
			if tracks[i].Node == node {
				return &tracks[i]
			}
		}
		tracks = append(tracks, animation.Track{Node: node})
		return &tracks[len(tracks)-1]
	}

	for ci, ch := range src.Channels {
		log := im.log.With(zap.Int("animation", ai), zap.Int("channel", ci))
		if ch == nil || ch.Target.Node == nil {
			log.Warn("channel without target node")
			continue
		}
		if ch.Sampler < 0 || ch.Sampler >= len(src.Samplers) || src.Samplers[ch.Sampler] == nil {
			log.Warn("sampler index out of range", zap.Int("sampler", ch.Sampler))
			continue
		}
		channel, width, ok := channelOf(ch.Target.Path)
		if !ok {
			log.Warn("unsupported channel path", zap.Int("path", int(ch.Target.Path)))
			continue
		}

		sampler, ok := im.readSampler(log, src.Samplers[ch.Sampler], width)
		if !ok {
			continue
		}
		*trackFor(*ch.Target.Node).Sampler(channel) = sampler
	}

	return animation.NewClip(src.Name, tracks)
}

// channelOf maps a target path to its channel and value width. Weight
// widths depend on the morph target count and are reported as 0.
func channelOf(path gltf.TRSProperty) (animation.Channel, int, bool) {
	switch path {
	case gltf.TRSTranslation:
		return animation.ChannelTranslation, 3, true
	case gltf.TRSRotation:
		return animation.ChannelRotation, 4, true
	case gltf.TRSScale:
		return animation.ChannelScale, 3, true
	case gltf.TRSWeights:
		return animation.ChannelWeights, 0, true
	default:
		return 0, 0, false
	}
}

func (im *importer) readSampler(log *zap.Logger, src *gltf.AnimationSampler, width int) (animation.Sampler, bool) {
	inAcc, outAcc := im.accessorAt(src.Input), im.accessorAt(src.Output)
	if inAcc == nil || outAcc == nil {
		log.Warn("sampler accessor out of range", zap.Int("input", src.Input), zap.Int("output", src.Output))
		return animation.Sampler{}, false
	}

	in, err := modeler.ReadAccessor(im.doc, inAcc, nil)
	if err != nil {
		log.Warn("reading keyframe times failed", zap.Error(err))
		return animation.Sampler{}, false
	}
	times, ok := in.([]float32)
	if !ok || len(times) == 0 {
		log.Warn("keyframe times are not float scalars")
		return animation.Sampler{}, false
	}

	out, err := modeler.ReadAccessor(im.doc, outAcc, nil)
	if err != nil {
		log.Warn("reading keyframe values failed", zap.Error(err))
		return animation.Sampler{}, false
	}
	values, ok := flatten(out)
	if !ok {
		log.Warn("keyframe values are not float vectors")
		return animation.Sampler{}, false
	}

	interp := interpolationOf(src.Interpolation)
	if width == 0 {
		perKey := len(times)
		if interp == animation.InterpolationCubicSpline {
			perKey *= 3
		}
		width = len(values) / perKey
		if width == 0 {
			log.Warn("weight sampler has fewer values than keyframes")
			return animation.Sampler{}, false
		}
	}

	s := animation.NewSampler(interp, times, values, width)
	if s.Len() != len(times) {
		log.Warn("keyframe count mismatch, truncated",
			zap.Int("times", len(times)), zap.Int("keyframes", s.Len()))
	}
	return s, true
}

func interpolationOf(i gltf.Interpolation) animation.Interpolation {
	switch i {
	case gltf.InterpolationStep:
		return animation.InterpolationStep
	case gltf.InterpolationCubicSpline:
		return animation.InterpolationCubicSpline
	default:
		return animation.InterpolationLinear
	}
}

// flatten converts animation output accessors into one flat float slice.
// Integer outputs are normalized the way rotation and weight channels
// store them: signed components clamp at -1, unsigned map onto [0, 1].
func flatten(data any) ([]float32, bool) {
	switch v := data.(type) {
	case []float32:
		return v, true
	case [][3]float32:
		out := make([]float32, 0, len(v)*3)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case [][4]float32:
		out := make([]float32, 0, len(v)*4)
		for _, e := range v {
			out = append(out, e[:]...)
		}
		return out, true
	case []int8:
		return normalize(v, snorm8), true
	case []uint8:
		return normalize(v, unorm8), true
	case []int16:
		return normalize(v, snorm16), true
	case []uint16:
		return normalize(v, unorm16), true
	case [][4]int8:
		return normalize4(v, snorm8), true
	case [][4]uint8:
		return normalize4(v, unorm8), true
	case [][4]int16:
		return normalize4(v, snorm16), true
	case [][4]uint16:
		return normalize4(v, unorm16), true
	default:
		return nil, false
	}
}

type normInt interface {
	int8 | uint8 | int16 | uint16
}

func normalize[T normInt](v []T, conv func(T) float32) []float32 {
	out := make([]float32, len(v))
	for i, c := range v {
		out[i] = conv(c)
	}
	return out
}

func normalize4[T normInt](v [][4]T, conv func(T) float32) []float32 {
	out := make([]float32, 0, len(v)*4)
	for _, e := range v {
		for _, c := range e {
			out = append(out, conv(c))
		}
	}
	return out
}

func snorm8(c int8) float32 { return max(float32(c)/127, -1) }

func unorm8(c uint8) float32 { return float32(c) / 255 }

func snorm16(c int16) float32 { return max(float32(c)/32767, -1) }

func unorm16(c uint16) float32 { return float32(c) / 65535 }
