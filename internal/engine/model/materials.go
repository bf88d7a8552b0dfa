package model

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/scene"
)

const extTransmission = "KHR_materials_transmission"

func (im *importer) loadMaterials() []scene.Material {
	out := make([]scene.Material, len(im.doc.Materials))
	for i, src := range im.doc.Materials {
		if src == nil {
			out[i] = scene.DefaultMaterial()
			continue
		}
		out[i] = im.convertMaterial(i, src)
	}
	return out
}

func (im *importer) convertMaterial(i int, src *gltf.Material) scene.Material {
	m := scene.DefaultMaterial()
	m.Name = src.Name
	m.DoubleSided = src.DoubleSided
	m.AlphaCutoff = float32(src.AlphaCutoffOrDefault())

	switch src.AlphaMode {
	case gltf.AlphaMask:
		m.AlphaMode = scene.AlphaMask
	case gltf.AlphaBlend:
		m.AlphaMode = scene.AlphaBlend
	default:
		m.AlphaMode = scene.AlphaOpaque
	}

	if pbr := src.PBRMetallicRoughness; pbr != nil {
		c := pbr.BaseColorFactorOrDefault()
		m.BaseColorFactor = mgl32.Vec4{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
	}

	if raw, ok := src.Extensions[extTransmission]; ok {
		m.Transmission = true
		factor, err := transmissionFactor(raw)
		if err != nil {
			im.log.Warn("malformed transmission extension", zap.Int("material", i), zap.Error(err))
		}
		m.TransmissionFactor = factor
	}
	return m
}

// transmissionFactor extracts transmissionFactor from an extension value.
// Unregistered extensions decode as raw JSON; documents built in code may
// hold a plain map instead.
func transmissionFactor(raw any) (float32, error) {
	var ext struct {
		TransmissionFactor float64 `json:"transmissionFactor"`
	}
	switch v := raw.(type) {
	case json.RawMessage:
		if err := json.Unmarshal(v, &ext); err != nil {
			return 0, err
		}
	case map[string]any:
		if f, ok := v["transmissionFactor"].(float64); ok {
			ext.TransmissionFactor = f
		}
	}
	return float32(ext.TransmissionFactor), nil
}
