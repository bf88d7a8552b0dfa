package animation

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
)

// Clip is a named set of tracks played together.
type Clip struct {
	Name     string
	Duration float32
	Tracks   []Track
}

// NewClip returns a clip whose duration is the latest keyframe time of any
// track.
func NewClip(name string, tracks []Track) *Clip {
	c := &Clip{Name: name, Tracks: tracks}
	for i := range tracks {
		if e := tracks[i].End(); e > c.Duration {
			c.Duration = e
		}
	}
	return c
}

// Track returns the track targeting node, or nil.
func (c *Clip) Track(node int) *Track {
	for i := range c.Tracks {
		if c.Tracks[i].Node == node {
			return &c.Tracks[i]
		}
	}
	return nil
}

// Wrap maps time into [0, Duration).
func (c *Clip) Wrap(time float32) float32 {
	if c.Duration <= Epsilon {
		return 0
	}
	time = math32.Mod(time, c.Duration)
	if time < 0 {
		time += c.Duration
	}
	return time
}

// Evaluate poses the scene at time, wrapped by the clip duration. Tracks
// targeting unknown nodes are ignored. Clips not longer than Epsilon do
// nothing. Joint matrices are not touched; call Scene.UpdateJoints after.
func (c *Clip) Evaluate(s *scene.Scene, time float32) {
	if c.Duration <= Epsilon {
		return
	}
	time = c.Wrap(time)
	for i := range c.Tracks {
		tr := &c.Tracks[i]
		n := s.Node(tr.Node)
		if n == nil {
			continue
		}
		tr.apply(n, time)
	}
}
