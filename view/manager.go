package view

import (
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/render"
	"github.com/legoisland/sceneengine/roi"
	"github.com/legoisland/sceneengine/svc"
)

// dirtyBits tracks which of the Manager's derived state needs
// recomputing before the next Frame, avoiding rebuilding the frustum
// (a handful of matrix multiplies and six plane normalizations) on
// frames where neither the camera nor the viewport moved.
type dirtyBits uint8

const (
	cameraDirty dirtyBits = 1 << iota
	viewportDirty
)

// Manager is the view manager (component F): it owns a camera, derives
// a frustum from it on demand, and drives the per-frame visibility,
// LOD-selection, and scene-graph-sync pass over a forest of ROI roots.
type Manager struct {
	cfg    *svc.Config
	camera *Camera
	dirty  dirtyBits

	frustum   lin.Frustum
	areaAtOne float64
	roots     []*roi.OrientableROI

	// rview, if set via SetRenderer, is the renderer's view this
	// manager drives per §4.D.6 (set_frustum/render) and delegates
	// picking to per §4.D.5. A Manager with no renderer attached runs
	// headless, picking directly against the ROI tree — the mode
	// every existing test below exercises, and a legitimate one for a
	// server or asset-validation process with no graphics context.
	rview render.View
}

// NewManager returns a Manager reading its camera defaults from cfg.
func NewManager(cfg *svc.Config) *Manager {
	m := &Manager{
		cfg:    cfg,
		camera: NewCamera(cfg.FieldOfView, cfg.FrontPlane, cfg.BackPlane, cfg.ViewportWidth, cfg.ViewportHeight),
		dirty:  cameraDirty | viewportDirty,
	}
	return m
}

// Camera returns the manager's camera for direct inspection or for
// passing to SetCameraTransform/SetViewport.
func (m *Manager) Camera() *Camera { return m.camera }

// SetCameraTransform repositions/reorients the camera.
func (m *Manager) SetCameraTransform(t *lin.T) {
	m.camera.Transform.Set(t)
	m.dirty |= cameraDirty
}

// SetViewport updates the viewport size and perspective parameters.
func (m *Manager) SetViewport(fovDegrees, front, back float64, width, height int) {
	m.camera.FovDegrees, m.camera.Front, m.camera.Back = fovDegrees, front, back
	m.camera.Width, m.camera.Height = width, height
	m.dirty |= viewportDirty
}

// SetRenderer attaches the renderer's view this manager drives and
// picks through. Passing nil detaches it and reverts to headless
// picking against the ROI tree directly.
func (m *Manager) SetRenderer(v render.View) { m.rview = v }

// AddRoot registers a top-level ROI the per-frame pass should walk.
func (m *Manager) AddRoot(o *roi.OrientableROI) { m.roots = append(m.roots, o) }

// RemoveRoot unregisters a previously added root, a no-op if absent.
func (m *Manager) RemoveRoot(o *roi.OrientableROI) {
	for i, r := range m.roots {
		if r == o {
			m.roots = append(m.roots[:i], m.roots[i+1:]...)
			return
		}
	}
}

// Frame runs one pass of the view manager's work (§4.D.6): rebuild the
// frustum if the camera or viewport changed since the last call, then
// cull, select detail, and sync scene-graph geometry for every
// registered root in turn.
func (m *Manager) Frame() *svc.Error {
	if m.dirty&viewportDirty != 0 {
		if err := m.validateViewport(); err != nil {
			return err
		}
		m.areaAtOne = viewAreaAtOne(m.camera)
	}
	if m.dirty != 0 {
		m.frustum.Set(vpMatrix(m.camera))
		m.dirty = 0
	}
	for _, root := range m.roots {
		visit(root, &m.frustum, m.camera, m.areaAtOne, m.cfg.UserMaxLODPower)
	}
	m.renderFrame()
	return nil
}

// renderFrame drives the attached renderer's view, if any: sync its
// frustum and camera to this frame's, clear, and draw every root that
// carries geometry, per §4.D.6.
func (m *Manager) renderFrame() {
	if m.rview == nil {
		return
	}
	m.rview.SetCamera(&m.camera.Transform)
	m.rview.SetFrustum(m.camera.Front, m.camera.Back, m.camera.FovDegrees)
	m.rview.Clear()
	for _, root := range m.roots {
		if root.Geometry != nil {
			m.rview.Render(root.Geometry)
		}
	}
}

func (m *Manager) validateViewport() *svc.Error {
	if m.camera.Height <= 0 || m.camera.Width <= 0 {
		return svc.NewError(svc.InvalidParameters, "view: viewport width and height must be > 0")
	}
	if m.camera.Front <= 0 || m.camera.Back <= m.camera.Front {
		return svc.NewError(svc.InvalidParameters, "view: front plane must be > 0 and less than back plane")
	}
	return nil
}

// Pick casts a ray against the scene, per §4.D.5: when a renderer view
// is attached, delegate the initial pick to it and walk each returned
// hit-group chain upward to its owning top-level ROI, returning the
// first (frontmost, since the renderer orders hits nearest-first) one
// that resolves. With no renderer attached, Pick falls back to casting
// directly against the registered ROI tree — see the package-level
// Pick for that algorithm's semantics.
func (m *Manager) Pick(origin, dir *lin.V3) *roi.OrientableROI {
	if m.rview == nil {
		return Pick(m.roots, origin, dir)
	}
	for _, hit := range m.rview.Pick(origin, dir) {
		if owner := m.ownerOf(hit); owner != nil {
			return owner
		}
	}
	return nil
}

// ownerOf walks hit's Parent chain to its top-level group and reports
// which registered root's Geometry that top-level group is, or nil if
// it belongs to none of them (e.g. it was rendered by a different
// manager sharing the same renderer).
func (m *Manager) ownerOf(hit render.Group) *roi.OrientableROI {
	top := hit
	for top.Parent() != nil {
		top = top.Parent()
	}
	for _, root := range m.roots {
		if root.Geometry == top {
			return root
		}
	}
	return nil
}
