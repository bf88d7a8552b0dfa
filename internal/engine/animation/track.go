package animation

import "github.com/Faultbox/sceneview/internal/engine/scene"

// Track animates one node. Samplers is indexed by Channel; unused channels
// hold empty samplers.
type Track struct {
	Node     int
	Samplers [channelCount]Sampler
}

// Sampler returns the sampler for channel c.
func (tr *Track) Sampler(c Channel) *Sampler {
	if c >= channelCount {
		return nil
	}
	return &tr.Samplers[c]
}

// End returns the latest keyframe time across all samplers.
func (tr *Track) End() float32 {
	var end float32
	for i := range tr.Samplers {
		if e := tr.Samplers[i].End(); e > end {
			end = e
		}
	}
	return end
}

// apply writes the sampled channels at time into n. Channels without a
// valid sampler keep their current value.
func (tr *Track) apply(n *scene.Node, time float32) {
	t, r, s := n.Transform.Translation(), n.Transform.Rotation(), n.Transform.Scale()

	if sp := &tr.Samplers[ChannelTranslation]; sp.Valid() && sp.Width == 3 {
		t = sp.Vec3(time)
	}
	if sp := &tr.Samplers[ChannelRotation]; sp.Valid() && sp.Width == 4 {
		r = sp.Quat(time)
	}
	if sp := &tr.Samplers[ChannelScale]; sp.Valid() && sp.Width == 3 {
		s = sp.Vec3(time)
	}
	if sp := &tr.Samplers[ChannelWeights]; sp.Valid() {
		n.Weights = sp.Weights(time, n.Weights)
	}

	n.Transform.Set(t, r, s)
}
