package scene

// Scene is an imported model: the node hierarchy plus the shared vertex and
// index buffers every primitive points into.
type Scene struct {
	// Nodes is indexed by source node index. Entries are nil for nodes that
	// are not reachable from a root.
	Nodes []*Node
	Roots []*Node

	Skins     []*Skin
	Materials []Material

	// DummySkin is bound by drawables whose node has no skin.
	DummySkin *Skin

	Vertices []Vertex
	Indices  []uint32
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{DummySkin: NewDummySkin()}
}

// Node returns the node with the given index, or nil.
func (s *Scene) Node(i int) *Node {
	if i < 0 || i >= len(s.Nodes) {
		return nil
	}
	return s.Nodes[i]
}

// Skin returns the skin with the given index, or nil.
func (s *Scene) Skin(i int) *Skin {
	if i < 0 || i >= len(s.Skins) {
		return nil
	}
	return s.Skins[i]
}

// SkinFor returns the skin n binds, falling back to the dummy skin.
func (s *Scene) SkinFor(n *Node) *Skin {
	if sk := s.Skin(n.Skin); sk != nil {
		return sk
	}
	return s.DummySkin
}

// Material returns the material with the given index, or DefaultMaterial.
func (s *Scene) Material(i int) Material {
	if i < 0 || i >= len(s.Materials) {
		return DefaultMaterial()
	}
	return s.Materials[i]
}

// Walk visits every node reachable from the roots, depth first.
func (s *Scene) Walk(fn func(*Node)) {
	for _, r := range s.Roots {
		r.Walk(fn)
	}
}

// WorldBounds merges the world bounds of all roots. The result is empty when
// the scene has no geometry; check IsValid before framing a camera on it.
func (s *Scene) WorldBounds() BoundingBox {
	b := EmptyBox()
	for _, r := range s.Roots {
		b = b.Merge(r.WorldBounds())
	}
	return b
}

// UpdateJoints recomputes the joint matrices of every skin from the current
// world matrices and writes them to the skin buffers.
func (s *Scene) UpdateJoints() {
	for _, r := range s.Roots {
		s.UpdateJointsFrom(r)
	}
}

// UpdateJointsFrom updates the skins referenced by n and its descendants.
func (s *Scene) UpdateJointsFrom(n *Node) {
	n.Walk(func(n *Node) {
		if sk := s.Skin(n.Skin); sk != nil {
			sk.update(n.WorldMatrix(), s.Nodes)
		}
	})
}

// Reset drops the whole graph and both geometry buffers.
func (s *Scene) Reset() {
	s.Nodes = nil
	s.Roots = nil
	s.Skins = nil
	s.Materials = nil
	s.Vertices = nil
	s.Indices = nil
	s.DummySkin = NewDummySkin()
}

// NodeCount returns the number of nodes reachable from the roots.
func (s *Scene) NodeCount() int {
	n := 0
	s.Walk(func(*Node) { n++ })
	return n
}
