package model

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// uvEpsilon is the smallest UV determinant a triangle needs to contribute a
// tangent.
const uvEpsilon float32 = 1e-12

// generateNormals replaces every vertex normal with the normalized sum of
// the face normals of the triangles using it. Counter-clockwise triangles
// face the viewer. Vertices no triangle touches get +Y.
func generateNormals(verts []scene.Vertex, indices []uint32) {
	acc := make([]mgl32.Vec3, len(verts))
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		p0 := verts[i0].Position
		e1 := verts[i1].Position.Sub(p0)
		e2 := verts[i2].Position.Sub(p0)

		// Unnormalized, so larger faces weigh more.
		n := e1.Cross(e2)
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	for i := range verts {
		verts[i].Normal = math.NormalizeOr(acc[i], mgl32.Vec3{0, 1, 0})
	}
}

// generateTangents derives per-vertex tangents from positions and UV0.
// Handedness is always +1. Triangles with degenerate UVs are skipped and
// vertices left without a tangent get +X.
func generateTangents(verts []scene.Vertex, indices []uint32) {
	acc := make([]mgl32.Vec3, len(verts))
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		v0, v1, v2 := &verts[i0], &verts[i1], &verts[i2]

		dPos1 := v1.Position.Sub(v0.Position)
		dPos2 := v2.Position.Sub(v0.Position)
		dUV1 := v1.UV0.Sub(v0.UV0)
		dUV2 := v2.UV0.Sub(v0.UV0)

		det := dUV1[0]*dUV2[1] - dUV1[1]*dUV2[0]
		if math32.Abs(det) < uvEpsilon {
			continue
		}
		f := 1 / det
		tangent := dPos1.Mul(dUV2[1]).Sub(dPos2.Mul(dUV1[1])).Mul(f)

		acc[i0] = acc[i0].Add(tangent)
		acc[i1] = acc[i1].Add(tangent)
		acc[i2] = acc[i2].Add(tangent)
	}
	for i := range verts {
		verts[i].Tangent = math.NormalizeOr(acc[i], mgl32.Vec3{1, 0, 0}).Vec4(1)
	}
}
