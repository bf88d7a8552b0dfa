package model

import (
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/animation"
	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// importer carries the state of one Load call.
type importer struct {
	doc  *gltf.Document
	opts Options
	log  *zap.Logger

	scene *scene.Scene
	clips []*animation.Clip
	geo   geometryBuffer

	// visited guards against nodes reachable twice (cycles or shared
	// children).
	visited []bool
}

func newImporter(doc *gltf.Document, opts Options) *importer {
	s := scene.New()
	s.Nodes = make([]*scene.Node, len(doc.Nodes))
	return &importer{
		doc:     doc,
		opts:    opts,
		log:     opts.Logger,
		scene:   s,
		visited: make([]bool, len(doc.Nodes)),
	}
}

func (im *importer) run() {
	im.scene.Materials = im.loadMaterials()

	for _, root := range rootNodes(im.doc) {
		im.loadNode(root, nil)
	}

	im.scene.Vertices = im.geo.vertices
	im.scene.Indices = im.geo.indices
	im.scene.Skins = im.loadSkins()
	im.clips = im.loadAnimations()
}

// rootScene returns the index of the scene to import, or -1 when the
// document has none.
func rootScene(doc *gltf.Document) int {
	if len(doc.Scenes) == 0 {
		return -1
	}
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		return *doc.Scene
	}
	return 0
}

// rootNodes returns the node indices to start the import from: the nodes of
// the default scene, or every node without a parent when there are no
// scenes.
func rootNodes(doc *gltf.Document) []int {
	if i := rootScene(doc); i >= 0 && doc.Scenes[i] != nil {
		return doc.Scenes[i].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n == nil {
			continue
		}
		for _, c := range n.Children {
			if c >= 0 && c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i, p := range hasParent {
		if !p {
			roots = append(roots, i)
		}
	}
	return roots
}

// loadNode imports node i and its subtree. Children are fully built before
// the node is attached to parent.
func (im *importer) loadNode(i int, parent *scene.Node) {
	if i < 0 || i >= len(im.doc.Nodes) || im.doc.Nodes[i] == nil {
		im.log.Warn("node index out of range", zap.Int("node", i))
		return
	}
	if im.visited[i] {
		im.log.Warn("node reached twice, skipping", zap.Int("node", i))
		return
	}
	im.visited[i] = true

	src := im.doc.Nodes[i]
	n := scene.NewNode(i, src.Name)
	setNodeTransform(n, src)
	im.scene.Nodes[i] = n

	for _, c := range src.Children {
		im.loadNode(c, n)
	}

	if src.Mesh != nil {
		im.loadMesh(n, *src.Mesh)
	}
	if src.Skin != nil {
		if *src.Skin >= 0 && *src.Skin < len(im.doc.Skins) {
			n.Skin = *src.Skin
		} else {
			im.log.Warn("skin index out of range", zap.Int("node", i), zap.Int("skin", *src.Skin))
		}
	}
	if len(src.Weights) > 0 {
		n.Weights = float32s(src.Weights)
	}

	if parent != nil {
		parent.AddChild(n)
	} else {
		im.scene.Roots = append(im.scene.Roots, n)
	}
}

// setNodeTransform fills the node's TRS and base matrix. A node given only
// as a matrix is decomposed so that animation channels can drive it;
// otherwise the TRS fields are used and the matrix becomes the base.
func setNodeTransform(n *scene.Node, src *gltf.Node) {
	t := src.TranslationOrDefault()
	r := src.RotationOrDefault()
	s := src.ScaleOrDefault()
	m := math.Mat4FromFloat64(src.MatrixOrDefault())

	defaultTRS := t == [3]float64{} && r == [4]float64{0, 0, 0, 1} && s == [3]float64{1, 1, 1}
	if defaultTRS {
		n.Transform = scene.TransformFromMatrix(m)
		return
	}

	n.Transform.Set(
		math.Vec3FromFloat64(t[:], n.Transform.Translation()),
		math.QuatFromXYZW(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])),
		math.Vec3FromFloat64(s[:], n.Transform.Scale()),
	)
	n.Base = m
}

func float32s(v []float64) []float32 {
	out := make([]float32, len(v))
	for i := range v {
		out[i] = float32(v[i])
	}
	return out
}
