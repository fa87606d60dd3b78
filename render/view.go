package render

import (
	"math"

	"github.com/legoisland/sceneengine/math/lin"
)

// View is the renderer-side drawing surface (§4.E): it owns a camera and
// frustum parameters, draws a scene-graph root once per frame, and
// answers screen/world transform and picking queries against whatever
// it last drew. A Device produces Views; nothing outside this package
// constructs one directly.
type View interface {
	// SetCamera repositions/reorients the eye this view renders from.
	SetCamera(t *lin.T)
	// SetProjection sets the field of view, in degrees, for subsequent
	// frames.
	SetProjection(fovDegrees float64)
	// SetFrustum sets the near/far clip planes and field of view this
	// view renders and picks against.
	SetFrustum(front, back, fovDegrees float64)
	// SetBackgroundColor sets the colour Clear fills the buffer with.
	SetBackgroundColor(r, g, b, a float32)
	// Clear clears the draw buffers for a new frame.
	Clear()
	// Render draws every model reachable from root, recursing through
	// attached child groups.
	Render(root Group)
	// ForceUpdate marks a screen-space rectangle as needing redraw,
	// independent of the next scheduled frame.
	ForceUpdate(x, y, w, h int)

	// TransformWorldToScreen projects a world-space point to this
	// view's screen-space pixel coordinates.
	TransformWorldToScreen(x, y, z float64) (sx, sy int)
	// TransformScreenToWorld unprojects a screen-space pixel into a
	// world-space ray: an origin on the near plane and a unit
	// direction toward the far plane.
	TransformScreenToWorld(sx, sy int) (originX, originY, originZ, dirX, dirY, dirZ float64)

	// Pick casts a world-space ray and returns every hit leaf group in
	// nearest-first order. Each returned Group's Parent chain can be
	// walked up to whatever root was last passed to Render — the
	// "ordered list of hit groups" §4.D.5 names; it is the caller's
	// job to resolve a hit group back to an owning ROI.
	Pick(origin, dir *lin.V3) []Group
}

// view is the default View implementation: a camera, frustum
// parameters, a viewport, and the root group last handed to Render.
type view struct {
	gc Renderer

	camera   lin.T
	front    float64
	back     float64
	fov      float64
	width    int
	height   int
	bgR, bgG, bgB, bgA float32

	// roots accumulates every root Render has drawn since the last
	// Clear, so Pick can test against everything currently on screen
	// rather than only the most recently drawn root.
	roots []Group
}

func newView(gc Renderer, width, height int) *view {
	v := &view{gc: gc, width: width, height: height, front: 1, back: 1000, fov: 60, bgA: 1}
	v.camera.Set(lin.NewT())
	return v
}

func (v *view) SetCamera(t *lin.T) { v.camera.Set(t) }

func (v *view) SetProjection(fovDegrees float64) { v.fov = fovDegrees }

func (v *view) SetFrustum(front, back, fovDegrees float64) {
	v.front, v.back, v.fov = front, back, fovDegrees
}

func (v *view) SetBackgroundColor(r, g, b, a float32) { v.bgR, v.bgG, v.bgB, v.bgA = r, g, b, a }

func (v *view) Clear() {
	v.roots = nil
	v.gc.Color(v.bgR, v.bgG, v.bgB, v.bgA)
	v.gc.Clear()
}

// Render walks root depth-first, issuing gc.Render for every attached
// model, and remembers root among the trees Pick tests against.
func (v *view) Render(root Group) {
	v.roots = append(v.roots, root)
	renderGroup(v.gc, root)
}

func renderGroup(gc Renderer, g Group) {
	if g == nil {
		return
	}
	for _, m := range g.Models() {
		gc.Render(m)
	}
	for _, c := range g.Children() {
		renderGroup(gc, c)
	}
}

func (v *view) ForceUpdate(x, y, w, h int) {}

func (v *view) TransformWorldToScreen(x, y, z float64) (sx, sy int) {
	vx, vy, vz := v.camera.InvS(x, y, z)
	if vz == 0 {
		vz = 1e-6
	}
	aspect := 1.0
	if v.width > 0 {
		aspect = float64(v.height) / float64(v.width)
	}
	ndcX := vx / (-vz) * aspect
	ndcY := vy / (-vz)
	sx = int((ndcX*0.5 + 0.5) * float64(v.width))
	sy = int((1 - (ndcY*0.5 + 0.5)) * float64(v.height))
	return sx, sy
}

func (v *view) TransformScreenToWorld(sx, sy int) (ox, oy, oz, dx, dy, dz float64) {
	ndcX := (float64(sx)/float64(v.width))*2 - 1
	ndcY := 1 - (float64(sy)/float64(v.height))*2
	lx, ly, lz := v.camera.AppS(ndcX, ndcY, -1)
	ox, oy, oz = v.camera.Loc.GetS()
	dirX, dirY, dirZ := lx-ox, ly-oy, lz-oz
	length := dirX*dirX + dirY*dirY + dirZ*dirZ
	if length > 0 {
		inv := 1 / math.Sqrt(length)
		dirX, dirY, dirZ = dirX*inv, dirY*inv, dirZ*inv
	}
	return ox, oy, oz, dirX, dirY, dirZ
}

// Pick recurses every root rendered since the last Clear, testing each
// group's mirrored bounding sphere against the ray and collecting the
// hits in nearest-first order.
func (v *view) Pick(origin, dir *lin.V3) []Group {
	var hits []pickHit
	for _, root := range v.roots {
		collectHits(root, origin, dir, &hits)
	}
	sortHitsByDistance(hits)
	out := make([]Group, len(hits))
	for i, h := range hits {
		out[i] = h.group
	}
	return out
}

type pickHit struct {
	group Group
	dist  float64
}

func collectHits(g Group, origin, dir *lin.V3, hits *[]pickHit) {
	if g == nil {
		return
	}
	if gg, ok := g.(*group); ok && gg.bounds.Radius > 0 {
		if d, ok := gg.bounds.IntersectRay(origin, dir); ok {
			*hits = append(*hits, pickHit{group: g, dist: d})
		}
	}
	for _, c := range g.Children() {
		collectHits(c, origin, dir, hits)
	}
}

func sortHitsByDistance(hits []pickHit) {
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].dist < hits[j-1].dist; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}
