// Package drawable sorts the primitives of a posed scene into the draw
// buckets the renderer consumes.
package drawable

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
)

// Bucket is a draw pass.
type Bucket uint8

// Buckets, in draw order.
const (
	BucketOpaque Bucket = iota
	BucketTransmission
	BucketTransparent
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketOpaque:
		return "opaque"
	case BucketTransmission:
		return "transmission"
	case BucketTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// BucketFor returns the bucket a material draws in. Transmission wins over
// the alpha mode.
func BucketFor(m scene.Material) Bucket {
	switch {
	case m.Transmission:
		return BucketTransmission
	case m.AlphaMode == scene.AlphaOpaque:
		return BucketOpaque
	default:
		return BucketTransparent
	}
}

// Drawable is one primitive ready to draw this frame.
type Drawable struct {
	Node *scene.Node

	FirstIndex  uint32
	IndexCount  uint32
	VertexStart uint32

	Material int
	Skin     *scene.Skin
	World    mgl32.Mat4

	Bucket Bucket
	// Depth is the clip-space z of the primitive's bounds center, before
	// the perspective divide.
	Depth float32
}

// Queues holds the three draw buckets of a frame.
type Queues struct {
	Opaque       []Drawable
	Transmission []Drawable
	Transparent  []Drawable

	ordered []Drawable
}

// Reset empties every bucket, keeping the allocated storage.
func (q *Queues) Reset() {
	q.Opaque = q.Opaque[:0]
	q.Transmission = q.Transmission[:0]
	q.Transparent = q.Transparent[:0]
	q.ordered = q.ordered[:0]
}

// Len returns the total number of drawables.
func (q *Queues) Len() int {
	return len(q.Opaque) + len(q.Transmission) + len(q.Transparent)
}

// Bucket returns the slice for b.
func (q *Queues) Bucket(b Bucket) []Drawable {
	switch b {
	case BucketOpaque:
		return q.Opaque
	case BucketTransmission:
		return q.Transmission
	case BucketTransparent:
		return q.Transparent
	default:
		return nil
	}
}

// Ordered returns opaque, then transmission, then transparent drawables.
// The returned slice is reused by the next call.
func (q *Queues) Ordered() []Drawable {
	q.ordered = append(q.ordered[:0], q.Opaque...)
	q.ordered = append(q.ordered, q.Transmission...)
	q.ordered = append(q.ordered, q.Transparent...)
	return q.ordered
}

func (q *Queues) push(d Drawable) {
	switch d.Bucket {
	case BucketTransmission:
		q.Transmission = append(q.Transmission, d)
	case BucketTransparent:
		q.Transparent = append(q.Transparent, d)
	default:
		q.Opaque = append(q.Opaque, d)
	}
}
