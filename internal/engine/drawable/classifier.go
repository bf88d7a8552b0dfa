package drawable

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Classifier builds the draw queues of a scene each frame. The queues are
// reused between calls.
type Classifier struct {
	queues Queues
}

// NewClassifier returns an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify walks the scene depth first and sorts every primitive with
// indices into a bucket. Opaque drawables keep traversal order; transmission
// and transparent drawables are sorted far to near, ties keeping traversal
// order. The result is valid until the next call.
func (c *Classifier) Classify(s *scene.Scene, viewProj mgl32.Mat4) *Queues {
	q := &c.queues
	q.Reset()

	s.Walk(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		world := n.WorldMatrix()
		clip := viewProj.Mul4(world)
		skin := s.SkinFor(n)

		for i := range n.Mesh.Primitives {
			p := &n.Mesh.Primitives[i]
			if p.IndexCount == 0 {
				continue
			}
			q.push(Drawable{
				Node:        n,
				FirstIndex:  p.FirstIndex,
				IndexCount:  p.IndexCount,
				VertexStart: p.VertexStart,
				Material:    p.Material,
				Skin:        skin,
				World:       world,
				Bucket:      BucketFor(s.Material(p.Material)),
				Depth:       math.ClipDepth(clip, p.Bounds.Center()),
			})
		}
	})

	sortFarToNear(q.Transmission)
	sortFarToNear(q.Transparent)
	return q
}

func sortFarToNear(d []Drawable) {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Depth > d[j].Depth
	})
}
