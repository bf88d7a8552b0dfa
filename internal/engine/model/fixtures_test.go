package model

import (
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// triangleXY is a counter-clockwise triangle facing +Z.
var triangleXY = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

// addPrimitive writes positions and indices and returns the primitive.
// Indices may be nil for a non-indexed primitive.
func addPrimitive(doc *gltf.Document, positions [][3]float32, indices []uint16) *gltf.Primitive {
	p := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{gltf.POSITION: modeler.WritePosition(doc, positions)},
	}
	if indices != nil {
		p.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}
	return p
}

// addMesh appends a mesh made of the given primitives and returns its index.
func addMesh(doc *gltf.Document, name string, prims ...*gltf.Primitive) int {
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: prims})
	return len(doc.Meshes) - 1
}

// addNode appends a node and returns its index. Root nodes are added to the
// default scene.
func addNode(doc *gltf.Document, n *gltf.Node, root bool) int {
	doc.Nodes = append(doc.Nodes, n)
	i := len(doc.Nodes) - 1
	if root {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}
	return i
}

// testOptions returns import options with a logger that records warnings.
func testOptions(t *testing.T) (Options, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	opts := DefaultOptions()
	opts.SphereBounds = false
	opts.Logger = zap.New(core)
	return opts, logs
}
