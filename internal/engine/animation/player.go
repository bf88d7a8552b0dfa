package animation

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/internal/logger"
)

// Player owns the selected clip and the play time of a scene.
type Player struct {
	// Speed scales the dt passed to Advance.
	Speed float32

	scene   *scene.Scene
	clips   []*Clip
	current int
	time    float32
}

// NewPlayer returns a player for clips with the first clip selected.
func NewPlayer(s *scene.Scene, clips []*Clip) *Player {
	return &Player{
		Speed: 1,
		scene: s,
		clips: clips,
	}
}

// Clips returns all clips.
func (p *Player) Clips() []*Clip { return p.clips }

// Names lists the clip names in order.
func (p *Player) Names() []string {
	names := make([]string, len(p.clips))
	for i, c := range p.clips {
		names[i] = c.Name
	}
	return names
}

// Index returns the selected clip index.
func (p *Player) Index() int { return p.current }

// Clip returns the selected clip, or nil when there are none.
func (p *Player) Clip() *Clip {
	if p.current < 0 || p.current >= len(p.clips) {
		return nil
	}
	return p.clips[p.current]
}

// Time returns the current play time.
func (p *Player) Time() float32 { return p.time }

// SetClip selects clip i and rewinds to time zero. Out of range indices are
// ignored.
func (p *Player) SetClip(i int) {
	if i < 0 || i >= len(p.clips) {
		return
	}
	if i != p.current {
		logger.Debug("animation clip selected", zap.Int("clip", i), zap.String("name", p.clips[i].Name))
	}
	p.current = i
	p.SetTime(0)
}

// SetClipByName selects the first clip with the given name.
func (p *Player) SetClipByName(name string) bool {
	for i, c := range p.clips {
		if c.Name == name {
			p.SetClip(i)
			return true
		}
	}
	return false
}

// SetTime poses the scene with the selected clip at t and refreshes the
// joint matrices.
func (p *Player) SetTime(t float32) {
	c := p.Clip()
	if c == nil {
		p.time = 0
		p.scene.UpdateJoints()
		return
	}
	p.time = c.Wrap(t)
	c.Evaluate(p.scene, p.time)
	p.scene.UpdateJoints()
}

// Advance moves the play time forward by dt*Speed.
func (p *Player) Advance(dt float32) {
	p.SetTime(p.time + dt*p.Speed)
}
