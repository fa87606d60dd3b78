// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// Model links a Shader, a Mesh, and zero or more Textures into one
// drawable object — the argument Renderer.Render consumes. A Model is
// expected to be attached to a scene-graph Group to give it a world
// location, and disposed of through its owning Renderer when no longer
// drawn.
type Model interface {
	SetMesh(m Mesh) Model          // Mandatory vertex buffer data.
	AddTexture(t Texture) Model    // Add one more texture layer.
	SetDrawMode(mode int) Model    // TRIANGLES, LINES, or POINTS.
	Set2D(is2D bool) Model         // True disables depth testing.
	SetCull(cull bool) Model       // Backface culling, on by default.

	Alpha() float64               // Transparency, 1 fully opaque.
	SetAlpha(a float64) Model
	Colour() (r, g, b float64)    // Diffuse colour, 0..1 per channel.
	SetColour(r, g, b float64) Model

	// Uniform sets a custom shader uniform value by the name the
	// shader source declares it under. Unknown names are ignored at
	// bind time rather than treated as an error, since a Model is
	// often shared across shader variants that don't all use every
	// uniform.
	SetUniform(id string, floats ...float32) Model
	Uniform(id string) []float32
}

// Drawing mode constants for Model.SetDrawMode.
const (
	TRIANGLES = iota
	LINES
	POINTS
)

// =============================================================================

// model is the default implementation of Model.
type model struct {
	gc   graphicsContext
	shd  *shader
	msh  *mesh
	tex  []*texture
	mode int
	is2D bool
	cull bool

	alpha    float32
	kd       [3]float32
	uniforms map[string][]float32
}

// newModel returns a Model bound to shader s, opaque, back-face culled,
// and otherwise empty until SetMesh/AddTexture are called.
func newModel(gc graphicsContext, s Shader) *model {
	return &model{gc: gc, shd: s.(*shader), cull: true, alpha: 1, uniforms: map[string][]float32{}}
}

func (m *model) SetMesh(msh Mesh) Model { m.msh = msh.(*mesh); return m }

func (m *model) AddTexture(t Texture) Model {
	m.tex = append(m.tex, t.(*texture))
	return m
}

func (m *model) SetDrawMode(mode int) Model { m.mode = mode; return m }
func (m *model) Set2D(is2D bool) Model      { m.is2D = is2D; return m }
func (m *model) SetCull(cull bool) Model    { m.cull = cull; return m }

func (m *model) Alpha() float64      { return float64(m.alpha) }
func (m *model) SetAlpha(a float64) Model { m.alpha = float32(a); return m }

func (m *model) Colour() (r, g, b float64) {
	return float64(m.kd[0]), float64(m.kd[1]), float64(m.kd[2])
}
func (m *model) SetColour(r, g, b float64) Model {
	m.kd = [3]float32{float32(r), float32(g), float32(b)}
	return m
}

func (m *model) SetUniform(id string, floats ...float32) Model {
	m.uniforms[id] = floats
	return m
}
func (m *model) Uniform(id string) []float32 { return m.uniforms[id] }

// bindUniforms pushes this model's alpha, colour, and custom uniform
// values to whichever of its shader's declared uniform locations match
// by name. Values with no matching shader uniform are silently skipped.
func (m *model) bindUniforms() {
	if loc, ok := m.shd.uniforms["alpha"]; ok {
		m.gc.bindUniform(loc, f1, 1, m.alpha)
	}
	if loc, ok := m.shd.uniforms["kd"]; ok {
		m.gc.bindUniform(loc, f3, 1, m.kd[0], m.kd[1], m.kd[2])
	}
	for id, floats := range m.uniforms {
		loc, ok := m.shd.uniforms[id]
		if !ok {
			continue
		}
		switch len(floats) {
		case 1:
			m.gc.bindUniform(loc, f1, 1, floats[0])
		case 2:
			m.gc.bindUniform(loc, f2, 1, floats[0], floats[1])
		case 3:
			m.gc.bindUniform(loc, f3, 1, floats[0], floats[1], floats[2])
		case 4:
			m.gc.bindUniform(loc, f4, 1, floats[0], floats[1], floats[2], floats[3])
		}
	}
}
