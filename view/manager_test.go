package view

import (
	"testing"

	"github.com/legoisland/sceneengine/lod"
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/render"
	"github.com/legoisland/sceneengine/roi"
	"github.com/legoisland/sceneengine/svc"
)

// fakeRenderView is a minimal render.View stand-in that records the
// groups Render was called with and returns a canned Pick result,
// letting tests exercise Manager's renderer-delegation path without a
// graphics context.
type fakeRenderView struct {
	cleared    bool
	rendered   []render.Group
	pickResult []render.Group
}

func (v *fakeRenderView) SetCamera(*lin.T)               {}
func (v *fakeRenderView) SetProjection(float64)          {}
func (v *fakeRenderView) SetFrustum(front, back, fov float64) {}
func (v *fakeRenderView) SetBackgroundColor(r, g, b, a float32) {}
func (v *fakeRenderView) Clear()                         { v.cleared = true }
func (v *fakeRenderView) Render(g render.Group)          { v.rendered = append(v.rendered, g) }
func (v *fakeRenderView) ForceUpdate(x, y, w, h int)      {}
func (v *fakeRenderView) TransformWorldToScreen(x, y, z float64) (int, int) { return 0, 0 }
func (v *fakeRenderView) TransformScreenToWorld(sx, sy int) (float64, float64, float64, float64, float64, float64) {
	return 0, 0, 0, 0, 0, -1
}
func (v *fakeRenderView) Pick(origin, dir *lin.V3) []render.Group { return v.pickResult }

func testConfig() *svc.Config {
	cfg := svc.DefaultConfig()
	cfg.FieldOfView = 90
	cfg.FrontPlane = 1
	cfg.BackPlane = 10
	cfg.ViewportWidth = 1
	cfg.ViewportHeight = 1
	return cfg
}

// TestManagerFrameRejectsBadViewport checks that Frame surfaces an
// InvalidParameters error instead of dividing by a zero-size viewport.
func TestManagerFrameRejectsBadViewport(t *testing.T) {
	cfg := testConfig()
	cfg.ViewportWidth = 0
	m := NewManager(cfg)
	if err := m.Frame(); err == nil || err.Kind != svc.InvalidParameters {
		t.Errorf("expected InvalidParameters for a zero-width viewport, got %v", err)
	}
}

// TestManagerFrameAttachesVisibleROI checks an end-to-end pass: a root
// registered with the manager, positioned in front of the default
// camera, ends up with its coarsest LOD's model attached after Frame.
func TestManagerFrameAttachesVisibleROI(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	cache := lod.NewCache()
	list := cache.Create("thing", 1)
	model := &fakeModel{id: "m"}
	v := lod.NewViewLOD(lod.NewMesh(0), 1, 0, 0.0001) // tiny threshold, easily qualifies.
	v.Model = model
	list.Push(v)

	group := newFakeGroup()
	o := roi.NewViewROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1}, group)
	o.SetLODs(cache, list)
	o.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))

	m.AddRoot(o)
	if err := m.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !group.attached[model] {
		t.Errorf("expected the visible root's model to be attached after Frame")
	}
}

// TestManagerRemoveRootStopsTrackingIt checks that a removed root is no
// longer visited by Frame.
func TestManagerRemoveRootStopsTrackingIt(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	cache := lod.NewCache()
	list := cache.Create("thing", 1)
	model := &fakeModel{id: "m"}
	v := lod.NewViewLOD(lod.NewMesh(0), 1, 0, 0.0001)
	v.Model = model
	list.Push(v)

	group := newFakeGroup()
	o := roi.NewViewROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1}, group)
	o.SetLODs(cache, list)
	o.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))

	m.AddRoot(o)
	m.RemoveRoot(o)
	if err := m.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(group.attached) != 0 {
		t.Errorf("expected a removed root not to be visited by Frame")
	}
}

// TestManagerPickDelegatesToRegisteredRoots checks that Manager.Pick
// finds a hit among its own registered roots.
func TestManagerPickDelegatesToRegisteredRoots(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	o := roi.NewOrientableROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	o.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))
	m.AddRoot(o)

	got := m.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if got != o {
		t.Errorf("expected Manager.Pick to hit the registered root")
	}
}

// TestManagerPickDelegatesToRendererViewWhenAttached checks that once a
// renderer view is attached, Pick walks its hit-group chain back to the
// owning registered root instead of casting against the ROI tree
// directly.
func TestManagerPickDelegatesToRendererViewWhenAttached(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	group := newFakeGroup()
	o := roi.NewViewROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1}, group)
	m.AddRoot(o)

	rv := &fakeRenderView{pickResult: []render.Group{group}}
	m.SetRenderer(rv)

	got := m.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if got != o {
		t.Errorf(format, got, o)
	}
}

// TestManagerPickReturnsNilWhenRendererHitOwnedByNoRoot checks that a
// hit group that doesn't trace back to any registered root's Geometry
// yields no pick, rather than a false match.
func TestManagerPickReturnsNilWhenRendererHitOwnedByNoRoot(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	rv := &fakeRenderView{pickResult: []render.Group{newFakeGroup()}}
	m.SetRenderer(rv)

	if got := m.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1)); got != nil {
		t.Errorf(format, got, nil)
	}
}

// TestManagerFrameDrivesRendererViewWhenAttached checks that Frame
// clears and renders every geometry-bearing root through an attached
// renderer view, per §4.D.6.
func TestManagerFrameDrivesRendererViewWhenAttached(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	group := newFakeGroup()
	o := roi.NewViewROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1}, group)
	o.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))
	m.AddRoot(o)

	rv := &fakeRenderView{}
	m.SetRenderer(rv)

	if err := m.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rv.cleared {
		t.Errorf("expected Frame to Clear the attached renderer view")
	}
	if len(rv.rendered) != 1 || rv.rendered[0] != render.Group(group) {
		t.Errorf(format, rv.rendered, []render.Group{group})
	}
}
