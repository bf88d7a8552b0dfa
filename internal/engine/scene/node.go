package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is one element of the scene hierarchy. A node is owned by its parent,
// or by the scene's root list when Parent is nil.
type Node struct {
	Name  string
	Index int

	Parent   *Node
	Children []*Node

	// Transform is the animated local TRS; Base is the static matrix applied
	// after it.
	Transform Transform
	Base      mgl32.Mat4

	Mesh *Mesh
	// Skin indexes Scene.Skins; -1 when the node is not skinned.
	Skin int
	// Weights holds the current morph target weights.
	Weights []float32

	// Bounds is the local bounding box of the node's mesh.
	Bounds BoundingBox
}

// NewNode returns an identity node without mesh or skin.
func NewNode(index int, name string) *Node {
	return &Node{
		Name:      name,
		Index:     index,
		Transform: NewTransform(),
		Base:      mgl32.Ident4(),
		Skin:      -1,
		Bounds:    EmptyBox(),
	}
}

// AddChild attaches c as the last child of n.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// LocalMatrix returns Transform.Matrix() * Base.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return n.Transform.Matrix().Mul4(n.Base)
}

// WorldMatrix multiplies the local matrices from the root down to n. It is
// recomputed on every call.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldBounds returns the node's bounds in world space merged with the world
// bounds of all descendants.
func (n *Node) WorldBounds() BoundingBox {
	b := n.Bounds.Transform(n.WorldMatrix())
	for _, c := range n.Children {
		b = b.Merge(c.WorldBounds())
	}
	return b
}

// Walk visits n and its descendants depth first, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
