// Package model imports glTF documents into a scene graph and drives it each
// frame: animation, skinning and draw classification.
package model

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/animation"
	"github.com/Faultbox/sceneview/internal/engine/drawable"
	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/internal/logger"
)

// ErrEmptyDocument is returned for documents without any node.
var ErrEmptyDocument = errors.New("model: document has no nodes")

// Options controls the import.
type Options struct {
	// FlipY mirrors positions, normals and bounds across the XZ plane.
	FlipY bool
	// GenerateNormals synthesizes normals for primitives without NORMAL.
	GenerateNormals bool
	// GenerateTangents synthesizes tangents for primitives without TANGENT.
	GenerateTangents bool
	// SphereBounds replaces each node's box with the cube enclosing its
	// bounding sphere, so it stays valid under rotation.
	SphereBounds bool

	// Logger receives import warnings. Defaults to logger.Log.
	Logger *zap.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		GenerateNormals:  true,
		GenerateTangents: true,
		SphereBounds:     true,
	}
}

// Model is an imported scene together with its clips.
type Model struct {
	Name   string
	Scene  *scene.Scene
	Clips  []*animation.Clip
	Player *animation.Player

	classifier *drawable.Classifier
}

// Load builds a model from a decoded document. Malformed parts of the
// document are logged and skipped; an error is returned only when there is
// nothing to import at all.
func Load(doc *gltf.Document, opts Options) (*Model, error) {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}
	if opts.Logger == nil {
		opts.Logger = logger.Named("import")
	}

	im := newImporter(doc, opts)
	im.run()

	m := &Model{
		Scene:      im.scene,
		Clips:      im.clips,
		Player:     animation.NewPlayer(im.scene, im.clips),
		classifier: drawable.NewClassifier(),
	}
	if i := rootScene(doc); i >= 0 {
		m.Name = doc.Scenes[i].Name
	}
	m.Player.SetTime(0)

	opts.Logger.Debug("model loaded",
		zap.Int("nodes", m.Scene.NodeCount()),
		zap.Int("vertices", len(m.Scene.Vertices)),
		zap.Int("indices", len(m.Scene.Indices)),
		zap.Int("skins", len(m.Scene.Skins)),
		zap.Int("clips", len(m.Clips)))
	return m, nil
}

// LoadFile opens a .gltf or .glb file and loads it.
func LoadFile(path string, opts Options) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	m, err := Load(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// Update advances the selected clip by dt seconds and refreshes the joint
// matrices.
func (m *Model) Update(dt float32) {
	m.Player.Advance(dt)
}

// Drawables classifies the posed scene for the given view-projection. The
// queues are reused by the next call.
func (m *Model) Drawables(viewProj mgl32.Mat4) *drawable.Queues {
	return m.classifier.Classify(m.Scene, viewProj)
}

// Bounds returns the world bounds of the posed scene.
func (m *Model) Bounds() scene.BoundingBox {
	return m.Scene.WorldBounds()
}
