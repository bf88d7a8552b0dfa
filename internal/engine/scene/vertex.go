package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ColorWhite is the packed color of vertices without COLOR_0.
const ColorWhite uint32 = 0xFFFFFFFF

// Vertex is the interleaved layout consumed by the renderer. Unused
// attributes stay zero except Color, which defaults to white.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    uint32 // RGBA8, R in the low byte
	UV0      mgl32.Vec2
	UV1      mgl32.Vec2
	Tangent  mgl32.Vec4 // xyz direction, w handedness
	Joints   [4]uint8
	Weights  mgl32.Vec4
}

// PackColor packs a linear [0,1] RGBA color into RGBA8.
func PackColor(c mgl32.Vec4) uint32 {
	var out uint32
	for i := 0; i < 4; i++ {
		v := math32.Round(mgl32.Clamp(c[i], 0, 1) * 255)
		out |= uint32(v) << (8 * uint(i))
	}
	return out
}

// UnpackColor is the inverse of PackColor.
func UnpackColor(c uint32) mgl32.Vec4 {
	var out mgl32.Vec4
	for i := 0; i < 4; i++ {
		out[i] = float32((c>>(8*uint(i)))&0xFF) / 255
	}
	return out
}
