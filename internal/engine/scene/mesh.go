package scene

// Primitive is a range of the scene's shared index buffer drawn with one
// material.
type Primitive struct {
	FirstIndex  uint32
	IndexCount  uint32
	VertexStart uint32
	VertexCount uint32

	// Material indexes Scene.Materials; -1 selects the default material.
	Material int
	Bounds   BoundingBox
}

// Mesh is the ordered list of primitives attached to a node.
type Mesh struct {
	Name       string
	Primitives []Primitive
}

// Bounds merges the bounds of every primitive.
func (m *Mesh) Bounds() BoundingBox {
	b := EmptyBox()
	for i := range m.Primitives {
		b = b.Merge(m.Primitives[i].Bounds)
	}
	return b
}
