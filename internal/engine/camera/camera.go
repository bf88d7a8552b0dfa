// Package camera provides the framing camera used to look at a loaded scene.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
)

// minRadius keeps a degenerate (single point) scene viewable.
const minRadius = 1e-3

// Framing orbits a center point at a distance chosen to fit a bounding box.
type Framing struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	FovY   float32 // Vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32

	// Clip planes sit this many radii beyond the fitted sphere.
	NearPadding float32
	FarPadding  float32
}

// NewFraming creates a framing camera with default settings.
func NewFraming() *Framing {
	return &Framing{
		Distance:    5,
		Pitch:       0.3,
		FovY:        mgl32.DegToRad(45),
		Aspect:      16.0 / 9.0,
		Near:        0.01,
		Far:         100,
		NearPadding: 0.1,
		FarPadding:  0.1,
	}
}

// Position returns the camera position in world space.
func (c *Framing) Position() mgl32.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return c.Center.Add(mgl32.Vec3{
		c.Distance * cp * sy,
		c.Distance * sp,
		c.Distance * cp * cy,
	})
}

// View returns the view matrix.
func (c *Framing) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix.
func (c *Framing) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Framing) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// SetViewport updates the aspect ratio from a viewport size in pixels.
func (c *Framing) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// FitToBounds centers the camera on b and moves it back until the bounding
// sphere of b fills the narrower field of view. Near and far are placed
// around the sphere. It reports false and leaves the camera untouched when
// b is invalid.
func (c *Framing) FitToBounds(b scene.BoundingBox) bool {
	if !b.IsValid() {
		return false
	}
	c.Center = b.Center()

	r := b.Radius()
	if r < minRadius {
		r = minRadius
	}

	half := c.FovY / 2
	if c.Aspect > 0 && c.Aspect < 1 {
		half = math32.Atan(math32.Tan(half) * c.Aspect)
	}
	c.Distance = r / math32.Sin(half)

	c.Near = c.Distance - r*(1+c.NearPadding)
	if floor := c.Distance * 1e-3; c.Near < floor {
		c.Near = floor
	}
	c.Far = c.Distance + r*(1+c.FarPadding)
	return true
}
