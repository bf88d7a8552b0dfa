package scene

import "github.com/go-gl/mathgl/mgl32"

// AlphaMode selects how a material's alpha is interpreted.
type AlphaMode uint8

// Alpha modes.
const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

// String returns the glTF name of the mode.
func (m AlphaMode) String() string {
	switch m {
	case AlphaOpaque:
		return "OPAQUE"
	case AlphaMask:
		return "MASK"
	case AlphaBlend:
		return "BLEND"
	default:
		return "UNKNOWN"
	}
}

// Material carries the properties draw classification depends on.
type Material struct {
	Name            string
	BaseColorFactor mgl32.Vec4
	AlphaMode       AlphaMode
	AlphaCutoff     float32
	DoubleSided     bool

	// Transmission is set when the material uses KHR_materials_transmission.
	Transmission       bool
	TransmissionFactor float32
}

// DefaultMaterial returns the opaque material used for primitives without
// one.
func DefaultMaterial() Material {
	return Material{
		Name:            "default",
		BaseColorFactor: mgl32.Vec4{1, 1, 1, 1},
		AlphaMode:       AlphaOpaque,
		AlphaCutoff:     0.5,
	}
}
