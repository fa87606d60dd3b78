package render

// ShadingModel mirrors lod.ShadingModel's values so a MeshBuilder call
// site can name a shading model without this package importing lod
// (lod already imports render for Model; the reverse would cycle).
type ShadingModel int

const (
	Wireframe ShadingModel = iota
	UnlitFlat
	Flat
	Gouraud
	Phong
)

// MeshBuilder is the asset-pipeline-facing Mesh constructor: a single
// call taking parallel per-vertex arrays plus face indices and a
// shading model, rather than Mesh's own incremental InitData/SetData/
// InitFaces/SetFaces sequence — §4.E's create_mesh.
type MeshBuilder struct {
	gc Renderer
}

func newMeshBuilder(gc Renderer) *MeshBuilder { return &MeshBuilder{gc: gc} }

// CreateMesh builds a bound Mesh named name from parallel position/
// normal/uv arrays (normals and uvs may be nil if the shading model or
// shader doesn't need them) and a face index list. shading is recorded
// as a uniform-free hint only; the renderer draws every mesh the same
// way regardless, picking shading variation up from the Model's shader.
func (b *MeshBuilder) CreateMesh(name string, positions, normals, uvs []float32, faces []uint16, shading ShadingModel) Mesh {
	m := b.gc.NewMesh(name)
	m.InitData(0, 3, STATIC, false)
	m.SetData(0, positions)
	if normals != nil {
		m.InitData(1, 3, STATIC, true)
		m.SetData(1, normals)
	}
	if uvs != nil {
		m.InitData(2, 2, STATIC, false)
		m.SetData(2, uvs)
	}
	m.InitFaces(STATIC)
	m.SetFaces(faces)
	return m
}
