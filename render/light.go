package render

// LightKind selects a Light's illumination model — point, directional,
// or ambient — matching §4.E's create_light parameter.
type LightKind int

const (
	AmbientLight LightKind = iota
	DirectionalLight
	PointLight
)

// Light is a renderer-side light source: a kind, a colour, and (for
// directional/point lights) a world-space position or direction.
// Position is read as a direction for DirectionalLight and as a
// location for PointLight; it is unused for AmbientLight.
type Light struct {
	Kind LightKind

	R, G, B float32
	X, Y, Z float64
}

func newLight(kind LightKind) *Light {
	return &Light{Kind: kind, R: 1, G: 1, B: 1}
}

// SetColor sets this light's colour.
func (l *Light) SetColor(r, g, b float32) *Light { l.R, l.G, l.B = r, g, b; return l }

// SetPosition sets this light's position (PointLight) or direction
// (DirectionalLight).
func (l *Light) SetPosition(x, y, z float64) *Light { l.X, l.Y, l.Z = x, y, z; return l }
