package model

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/scene"
	"github.com/Faultbox/sceneview/pkg/math"
)

// loadSkins converts every skin. Missing or short inverse bind matrix
// accessors leave the affected joints at identity.
func (im *importer) loadSkins() []*scene.Skin {
	out := make([]*scene.Skin, 0, len(im.doc.Skins))
	for i, src := range im.doc.Skins {
		if src == nil {
			out = append(out, scene.NewSkin("", nil, nil))
			continue
		}
		log := im.log.With(zap.Int("skin", i))

		for _, j := range src.Joints {
			if im.scene.Node(j) == nil {
				log.Warn("joint node not in scene", zap.Int("joint", j))
			}
		}

		var ibm []mgl32.Mat4
		if src.InverseBindMatrices != nil {
			ibm = im.readMatrices(log, *src.InverseBindMatrices)
		}
		if len(ibm) < len(src.Joints) {
			log.Warn("inverse bind matrices missing, using identity",
				zap.Int("joints", len(src.Joints)), zap.Int("matrices", len(ibm)))
		}

		sk := scene.NewSkin(src.Name, src.Joints, ibm)
		if src.Skeleton != nil {
			sk.Skeleton = *src.Skeleton
		}
		out = append(out, sk)
	}
	return out
}

func (im *importer) readMatrices(log *zap.Logger, idx int) []mgl32.Mat4 {
	acc := im.accessorAt(idx)
	if acc == nil {
		log.Warn("inverse bind matrix accessor out of range", zap.Int("accessor", idx))
		return nil
	}
	data, err := modeler.ReadAccessor(im.doc, acc, nil)
	if err != nil {
		log.Warn("reading inverse bind matrices failed", zap.Error(err))
		return nil
	}
	cols, ok := data.([][4][4]float32)
	if !ok {
		log.Warn("inverse bind matrices are not float MAT4", zap.Int("accessor", idx))
		return nil
	}
	out := make([]mgl32.Mat4, len(cols))
	for i := range cols {
		out[i] = math.Mat4FromColumns(cols[i])
	}
	return out
}
