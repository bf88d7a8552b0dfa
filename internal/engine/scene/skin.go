package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/pkg/math"
)

// JointBuffer receives a skin's joint matrices after every update. It is
// typically backed by a GPU storage buffer owned by the renderer.
type JointBuffer interface {
	WriteJoints(matrices []mgl32.Mat4)
}

// Skin binds a mesh to a set of joint nodes.
type Skin struct {
	Name string
	// Skeleton is the node index of the skeleton root, -1 when absent.
	Skeleton int
	// Joints are node indices, parallel to InverseBindMatrices.
	Joints              []int
	InverseBindMatrices []mgl32.Mat4

	// JointMatrices is the result of the last update.
	JointMatrices []mgl32.Mat4
	// Buffer, when set, receives JointMatrices on every update.
	Buffer JointBuffer
}

// NewSkin returns a skin for the given joints. Missing inverse bind matrices
// are replaced with identity and surplus ones are dropped.
func NewSkin(name string, joints []int, inverseBind []mgl32.Mat4) *Skin {
	ibm := make([]mgl32.Mat4, len(joints))
	for i := range ibm {
		if i < len(inverseBind) {
			ibm[i] = inverseBind[i]
		} else {
			ibm[i] = mgl32.Ident4()
		}
	}
	jm := make([]mgl32.Mat4, len(joints))
	for i := range jm {
		jm[i] = mgl32.Ident4()
	}
	return &Skin{
		Name:                name,
		Skeleton:            -1,
		Joints:              append([]int(nil), joints...),
		InverseBindMatrices: ibm,
		JointMatrices:       jm,
	}
}

// NewDummySkin returns a single-joint identity skin for unskinned drawables.
func NewDummySkin() *Skin {
	return NewSkin("dummy", []int{-1}, nil)
}

// update recomputes every joint matrix relative to the skinned node.
// Joints referring to unknown nodes are left at identity.
func (s *Skin) update(nodeWorld mgl32.Mat4, nodes []*Node) {
	inv := math.Inverse(nodeWorld)
	for i, j := range s.Joints {
		if j < 0 || j >= len(nodes) || nodes[j] == nil {
			s.JointMatrices[i] = mgl32.Ident4()
			continue
		}
		s.JointMatrices[i] = inv.Mul4(nodes[j].WorldMatrix()).Mul4(s.InverseBindMatrices[i])
	}
	if s.Buffer != nil {
		s.Buffer.WriteJoints(s.JointMatrices)
	}
}
