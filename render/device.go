package render

// Device is the renderer entry point (§4.E): it owns the graphics
// context and hands out the Views, Groups, Lights, and MeshBuilders
// that draw through it. The View manager (component F) is expected to
// create exactly one Device at startup and one View per on-screen
// viewport.
type Device interface {
	// Init brings up the underlying graphics context; callers must
	// call it once, before creating any View.
	Init() error

	// NewView returns a View rendering into a viewport of the given
	// pixel dimensions.
	NewView(width, height int) View
	// NewGroup returns an empty scene-graph node, the attach point
	// Views render and pick against.
	NewGroup() Group
	// NewLight returns a light with the given default parameters.
	NewLight(kind LightKind) *Light
	// NewMeshBuilder returns a MeshBuilder that constructs Mesh values
	// bound through this device's graphics context.
	NewMeshBuilder() *MeshBuilder
}

// device is the default Device implementation, wrapping a Renderer.
type device struct {
	gc Renderer
}

// NewDevice wraps renderer gc as a Device. Passing render.New()'s
// result is the usual case; a test Renderer stand-in works too.
func NewDevice(gc Renderer) Device { return &device{gc: gc} }

func (d *device) Init() error { return d.gc.Init() }

func (d *device) NewView(width, height int) View {
	d.gc.Viewport(width, height)
	return newView(d.gc, width, height)
}

func (d *device) NewGroup() Group { return NewGroup() }

func (d *device) NewLight(kind LightKind) *Light { return newLight(kind) }

func (d *device) NewMeshBuilder() *MeshBuilder { return newMeshBuilder(d.gc) }
