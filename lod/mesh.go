// Package lod implements the mesh/LOD data model and the named,
// reference-counted ViewLODList cache that owns it (components B and C):
// a Mesh is one drawable sub-mesh, a LODObject exposes the coarseness
// metrics the view manager projects against, and a Cache hands out
// shared, ref-counted LODLists keyed by ROI-type name.
package lod

import "image"

// ShadingModel selects how a Mesh's surface is lit, mirroring the
// renderer contract's ShadingModel enum (§6.2) rather than duplicating
// an independent one.
type ShadingModel int

const (
	Wireframe ShadingModel = iota
	UnlitFlat
	Flat
	Gouraud
	Phong
)

// TextureMappingMode selects how UVs are interpolated across a face.
type TextureMappingMode int

const (
	Linear TextureMappingMode = iota
	PerspectiveCorrect
)

// Mesh encapsulates one drawable sub-mesh: a group index into a
// lower-level mesh object, a textured flag, colour + alpha, a shading
// model, a texture-mapping mode, and an optional texture. This is the
// per-LOD-entry payload the view manager attaches to a ViewROI's
// geometry node.
type Mesh struct {
	GroupIndex int
	IsTextured bool

	ColorR, ColorG, ColorB, Alpha float32

	Shading ShadingModel
	Mapping TextureMappingMode

	texture image.Image
}

// NewMesh returns a non-textured, opaque white mesh referencing the
// given group index.
func NewMesh(groupIndex int) *Mesh {
	return &Mesh{GroupIndex: groupIndex, ColorR: 1, ColorG: 1, ColorB: 1, Alpha: 1}
}

// SetColor sets this mesh's flat colour and alpha directly. Valid
// whether or not the mesh is textured, matching legolod.h's untextured
// SetLodColor path.
func (m *Mesh) SetColor(r, g, b, a float32) *Mesh {
	m.ColorR, m.ColorG, m.ColorB, m.Alpha = r, g, b, a
	return m
}

// SetTexture assigns tex as this mesh's texture and resets colour to
// opaque white, matching legolod.h's SetTextureInfo: applying a texture
// clears any previous flat-colour override. Passing nil unsets the
// texture and clears IsTextured, per §4.E's Mesh::set_texture contract.
func (m *Mesh) SetTexture(tex image.Image) *Mesh {
	m.texture = tex
	m.IsTextured = tex != nil
	m.ColorR, m.ColorG, m.ColorB, m.Alpha = 1, 1, 1, 1
	return m
}

// SetTextureKeepColor assigns tex without touching the current colour,
// matching legolod.h's FUN_100aad70 — texture only, no colour reset.
func (m *Mesh) SetTextureKeepColor(tex image.Image) *Mesh {
	m.texture = tex
	m.IsTextured = tex != nil
	return m
}

// Texture returns the mesh's current texture, or nil if untextured.
func (m *Mesh) Texture() image.Image { return m.texture }
