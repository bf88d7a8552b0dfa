package model

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// geometryBuffer accumulates the shared vertex and index buffers while the
// node tree is imported. Indices are absolute into vertices.
type geometryBuffer struct {
	vertices []scene.Vertex
	indices  []uint32
}

// append adds a primitive's vertices and primitive-relative indices and
// returns the offsets they were stored at.
func (g *geometryBuffer) append(verts []scene.Vertex, indices []uint32) (firstIndex, vertexStart uint32) {
	firstIndex = uint32(len(g.indices))
	vertexStart = uint32(len(g.vertices))
	g.vertices = append(g.vertices, verts...)
	for _, i := range indices {
		g.indices = append(g.indices, i+vertexStart)
	}
	return firstIndex, vertexStart
}

// loadMesh imports every primitive of mesh mi into n.
func (im *importer) loadMesh(n *scene.Node, mi int) {
	if mi < 0 || mi >= len(im.doc.Meshes) || im.doc.Meshes[mi] == nil {
		im.log.Warn("mesh index out of range", zap.Int("node", n.Index), zap.Int("mesh", mi))
		return
	}
	src := im.doc.Meshes[mi]
	mesh := &scene.Mesh{Name: src.Name}
	bounds := scene.EmptyBox()

	for pi, prim := range src.Primitives {
		if prim == nil {
			continue
		}
		p, ok := im.loadPrimitive(mi, pi, prim)
		if !ok {
			continue
		}
		mesh.Primitives = append(mesh.Primitives, p)
		bounds = bounds.Merge(p.Bounds)
	}

	if im.opts.SphereBounds {
		bounds = bounds.SphereCube()
	}
	n.Mesh = mesh
	n.Bounds = bounds
	if len(n.Weights) == 0 && len(src.Weights) > 0 {
		n.Weights = float32s(src.Weights)
	}
}

// loadPrimitive reads one triangle primitive. It returns false when the
// primitive cannot be drawn; nothing is appended in that case.
func (im *importer) loadPrimitive(mi, pi int, prim *gltf.Primitive) (scene.Primitive, bool) {
	log := im.log.With(zap.Int("mesh", mi), zap.Int("primitive", pi))

	if prim.Mode != gltf.PrimitiveTriangles {
		log.Warn("unsupported primitive mode", zap.Int("mode", int(prim.Mode)))
		return scene.Primitive{}, false
	}
	posAcc := im.accessor(prim.Attributes, gltf.POSITION)
	if posAcc == nil {
		log.Warn("primitive has no usable POSITION accessor")
		return scene.Primitive{}, false
	}
	positions, err := modeler.ReadPosition(im.doc, posAcc, nil)
	if err != nil || len(positions) == 0 {
		log.Warn("reading positions failed", zap.Error(err))
		return scene.Primitive{}, false
	}

	verts := make([]scene.Vertex, len(positions))
	for i, p := range positions {
		verts[i].Position = p
		verts[i].Color = scene.ColorWhite
	}
	attrs := im.readAttributes(log, prim.Attributes, verts)

	indices, ok := im.readIndices(log, prim, len(verts))
	if !ok {
		return scene.Primitive{}, false
	}

	if !attrs.normals && im.opts.GenerateNormals {
		generateNormals(verts, indices)
	}
	if !attrs.tangents && im.opts.GenerateTangents {
		generateTangents(verts, indices)
	}

	bounds, fromAccessor := accessorBounds(posAcc)
	if !fromAccessor {
		bounds = scene.EmptyBox()
		for i := range verts {
			bounds = bounds.ExpandPoint(verts[i].Position)
		}
	}

	if im.opts.FlipY {
		for i := range verts {
			verts[i].Position[1] = -verts[i].Position[1]
			verts[i].Normal[1] = -verts[i].Normal[1]
		}
		bounds = bounds.FlipY()
	}

	material := -1
	if prim.Material != nil {
		if m := *prim.Material; m >= 0 && m < len(im.scene.Materials) {
			material = m
		} else {
			log.Warn("material index out of range, using default", zap.Int("material", m))
		}
	}

	firstIndex, vertexStart := im.geo.append(verts, indices)
	return scene.Primitive{
		FirstIndex:  firstIndex,
		IndexCount:  uint32(len(indices)),
		VertexStart: vertexStart,
		VertexCount: uint32(len(verts)),
		Material:    material,
		Bounds:      bounds,
	}, true
}

// accessor resolves a named attribute to its accessor, or nil.
func (im *importer) accessor(attrs gltf.PrimitiveAttributes, name string) *gltf.Accessor {
	idx, ok := attrs[name]
	if !ok {
		return nil
	}
	return im.accessorAt(idx)
}

func (im *importer) accessorAt(idx int) *gltf.Accessor {
	if idx < 0 || idx >= len(im.doc.Accessors) {
		return nil
	}
	return im.doc.Accessors[idx]
}

// presentAttributes records which optional attributes were read.
type presentAttributes struct {
	normals  bool
	tangents bool
}

// readAttributes fills the optional vertex attributes. An attribute that
// fails to read is logged and left at its zero value; surplus entries beyond
// the vertex count are ignored.
func (im *importer) readAttributes(log *zap.Logger, attrs gltf.PrimitiveAttributes, verts []scene.Vertex) presentAttributes {
	var present presentAttributes
	warn := func(name string, err error) {
		log.Warn("reading attribute failed", zap.String("attribute", name), zap.Error(err))
	}

	if acc := im.accessor(attrs, gltf.NORMAL); acc != nil {
		if normals, err := modeler.ReadNormal(im.doc, acc, nil); err != nil {
			warn(gltf.NORMAL, err)
		} else {
			present.normals = true
			for i := 0; i < len(verts) && i < len(normals); i++ {
				verts[i].Normal = math.NormalizeOr(normals[i], mgl32.Vec3{0, 1, 0})
			}
		}
	}
	if acc := im.accessor(attrs, gltf.TANGENT); acc != nil {
		if tangents, err := modeler.ReadTangent(im.doc, acc, nil); err != nil {
			warn(gltf.TANGENT, err)
		} else {
			present.tangents = true
			for i := 0; i < len(verts) && i < len(tangents); i++ {
				t := tangents[i]
				dir := math.NormalizeOr(mgl32.Vec3{t[0], t[1], t[2]}, mgl32.Vec3{1, 0, 0})
				verts[i].Tangent = dir.Vec4(t[3])
			}
		}
	}
	for set, name := range []string{gltf.TEXCOORD_0, gltf.TEXCOORD_1} {
		acc := im.accessor(attrs, name)
		if acc == nil {
			continue
		}
		uvs, err := modeler.ReadTextureCoord(im.doc, acc, nil)
		if err != nil {
			warn(name, err)
			continue
		}
		for i := 0; i < len(verts) && i < len(uvs); i++ {
			if set == 0 {
				verts[i].UV0 = uvs[i]
			} else {
				verts[i].UV1 = uvs[i]
			}
		}
	}
	if acc := im.accessor(attrs, gltf.COLOR_0); acc != nil {
		if colors, err := modeler.ReadColor(im.doc, acc, nil); err != nil {
			warn(gltf.COLOR_0, err)
		} else {
			for i := 0; i < len(verts) && i < len(colors); i++ {
				c := colors[i]
				verts[i].Color = uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | uint32(c[3])<<24
			}
		}
	}
	im.readSkinAttributes(log, attrs, verts)
	return present
}

// readSkinAttributes reads JOINTS_0 and WEIGHTS_0. Both must be present;
// joint indices that do not fit a byte are dropped with their weight.
func (im *importer) readSkinAttributes(log *zap.Logger, attrs gltf.PrimitiveAttributes, verts []scene.Vertex) {
	jointAcc, weightAcc := im.accessor(attrs, gltf.JOINTS_0), im.accessor(attrs, gltf.WEIGHTS_0)
	if jointAcc == nil || weightAcc == nil {
		return
	}
	joints, err := modeler.ReadJoints(im.doc, jointAcc, nil)
	if err != nil {
		log.Warn("reading joints failed", zap.Error(err))
		return
	}
	weights, err := modeler.ReadWeights(im.doc, weightAcc, nil)
	if err != nil {
		log.Warn("reading weights failed", zap.Error(err))
		return
	}

	dropped := 0
	for i := 0; i < len(verts) && i < len(joints) && i < len(weights); i++ {
		for k := 0; k < 4; k++ {
			if joints[i][k] > 0xFF {
				dropped++
				continue
			}
			verts[i].Joints[k] = uint8(joints[i][k])
			verts[i].Weights[k] = weights[i][k]
		}
	}
	if dropped > 0 {
		log.Warn("joint indices above 255 dropped", zap.Int("count", dropped))
	}
}

// readIndices returns the primitive-relative triangle list. Primitives
// without an index accessor are drawn in vertex order. A trailing partial
// triangle is discarded.
func (im *importer) readIndices(log *zap.Logger, prim *gltf.Primitive, vertexCount int) ([]uint32, bool) {
	var indices []uint32
	if prim.Indices == nil {
		indices = make([]uint32, vertexCount)
		for i := range indices {
			indices[i] = uint32(i)
		}
	} else {
		acc := im.accessorAt(*prim.Indices)
		if acc == nil {
			log.Warn("index accessor out of range", zap.Int("accessor", *prim.Indices))
			return nil, false
		}
		var err error
		indices, err = modeler.ReadIndices(im.doc, acc, nil)
		if err != nil {
			log.Warn("reading indices failed", zap.Error(err))
			return nil, false
		}
		for _, i := range indices {
			if int(i) >= vertexCount {
				log.Warn("index out of range", zap.Uint32("index", i), zap.Int("vertices", vertexCount))
				return nil, false
			}
		}
	}
	return indices[:len(indices)-len(indices)%3], true
}

// accessorBounds returns the box declared by a POSITION accessor's min and
// max, if both are present.
func accessorBounds(acc *gltf.Accessor) (scene.BoundingBox, bool) {
	if len(acc.Min) < 3 || len(acc.Max) < 3 {
		return scene.EmptyBox(), false
	}
	return scene.NewBoundingBox(
		math.Vec3FromFloat64(acc.Min, mgl32.Vec3{}),
		math.Vec3FromFloat64(acc.Max, mgl32.Vec3{}),
	), true
}
