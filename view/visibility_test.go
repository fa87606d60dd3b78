package view

import (
	"testing"

	"github.com/legoisland/sceneengine/lod"
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/render"
	"github.com/legoisland/sceneengine/roi"
)

// fakeModel is a minimal render.Model stand-in, just enough to be used
// as a distinct, comparable map key by a fakeGroup.
type fakeModel struct{ id string }

func (m *fakeModel) SetMesh(render.Mesh) render.Model           { return m }
func (m *fakeModel) AddTexture(render.Texture) render.Model     { return m }
func (m *fakeModel) SetDrawMode(int) render.Model               { return m }
func (m *fakeModel) Set2D(bool) render.Model                     { return m }
func (m *fakeModel) SetCull(bool) render.Model                   { return m }
func (m *fakeModel) Alpha() float64                              { return 1 }
func (m *fakeModel) SetAlpha(float64) render.Model               { return m }
func (m *fakeModel) Colour() (r, g, b float64)                   { return 1, 1, 1 }
func (m *fakeModel) SetColour(r, g, b float64) render.Model      { return m }
func (m *fakeModel) SetUniform(string, ...float32) render.Model  { return m }
func (m *fakeModel) Uniform(string) []float32                    { return nil }

// fakeGroup is a render.Group stand-in that records which models are
// currently attached, so tests can assert on applyLOD's attach/detach
// behaviour without a real graphics context.
type fakeGroup struct {
	attached map[render.Model]bool
	bounds   lin.Sphere
	parent   render.Group
	children []render.Group
}

func newFakeGroup() *fakeGroup { return &fakeGroup{attached: map[render.Model]bool{}} }

func (g *fakeGroup) SetTransform(t *lin.T)      {}
func (g *fakeGroup) SetBounds(s *lin.Sphere)    { g.bounds = *s }
func (g *fakeGroup) Attach(m render.Model)      { g.attached[m] = true }
func (g *fakeGroup) Detach(m render.Model)      { delete(g.attached, m) }
func (g *fakeGroup) AttachGroup(c render.Group) { g.children = append(g.children, c) }
func (g *fakeGroup) DetachGroup(render.Group)   {}
func (g *fakeGroup) Parent() render.Group       { return g.parent }
func (g *fakeGroup) Models() []render.Model {
	out := make([]render.Model, 0, len(g.attached))
	for m := range g.attached {
		out = append(out, m)
	}
	return out
}
func (g *fakeGroup) Children() []render.Group { return g.children }

func newTestROI(t *testing.T, thresholds ...float64) (*roi.OrientableROI, *fakeGroup, []*fakeModel) {
	t.Helper()
	cache := lod.NewCache()
	list := cache.Create("test", len(thresholds))
	models := make([]*fakeModel, len(thresholds))
	for i, th := range thresholds {
		m := &fakeModel{id: "m"}
		models[i] = m
		v := lod.NewViewLOD(lod.NewMesh(0), 1, 0, th)
		v.Model = m
		if !list.Push(v) {
			t.Fatalf("expected push within capacity to succeed")
		}
	}
	group := newFakeGroup()
	o := roi.NewViewROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1}, group)
	o.SetLODs(cache, list)
	return o, group, models
}

// TestApplyLODSkipsWhenSelectionUnchanged checks the §4.D.4 LastLOD
// cache: calling applyLOD twice with the same index only attaches once.
func TestApplyLODSkipsWhenSelectionUnchanged(t *testing.T) {
	o, group, models := newTestROI(t, 0.1, 1.0)
	applyLOD(o, 1)
	applyLOD(o, 1)
	if !group.attached[models[1]] {
		t.Errorf("expected lod 1's model to be attached")
	}
	if len(group.attached) != 1 {
		t.Errorf(format, len(group.attached), 1)
	}
}

// TestApplyLODSwitchesDetachesOldAttachesNew checks that changing the
// selected index detaches the previous model and attaches the new one.
func TestApplyLODSwitchesDetachesOldAttachesNew(t *testing.T) {
	o, group, models := newTestROI(t, 0.1, 1.0)
	applyLOD(o, 0)
	applyLOD(o, 1)
	if group.attached[models[0]] {
		t.Errorf("expected lod 0's model to have been detached")
	}
	if !group.attached[models[1]] {
		t.Errorf("expected lod 1's model to be attached")
	}
}

// TestApplyLODForceHideDetachesWithoutAttaching checks that selecting
// ForceHideLOD detaches whatever was showing and attaches nothing.
func TestApplyLODForceHideDetachesWithoutAttaching(t *testing.T) {
	o, group, models := newTestROI(t, 0.1, 1.0)
	applyLOD(o, 1)
	applyLOD(o, ForceHideLOD)
	if group.attached[models[1]] {
		t.Errorf("expected previously attached model to be detached on force-hide")
	}
	if len(group.attached) != 0 {
		t.Errorf(format, len(group.attached), 0)
	}
}

// TestVisitHidesNodeOutsideFrustum checks that a node outside the
// frustum gets ForceHideLOD applied even though it carries a LOD list
// and geometry.
func TestVisitHidesNodeOutsideFrustum(t *testing.T) {
	o, group, models := newTestROI(t, 0.1, 1.0)
	o.SetLocalTransform(lin.NewT().SetLoc(1000, 0, 0)) // far outside any reasonable frustum.
	applyLOD(o, 1)                                     // pretend it was showing lod 1 last frame.

	c := NewCamera(90, 1, 10, 1, 1)
	f := buildFrustum(c)
	visit(o, f, c, viewAreaAtOne(c), 1)

	if group.attached[models[1]] {
		t.Errorf("expected out-of-frustum node's model to be detached")
	}
	if o.LastLOD != ForceHideLOD {
		t.Errorf(format, o.LastLOD, ForceHideLOD)
	}
}

// TestVisitRecursesIntoChildrenRegardlessOfParentVisibility checks that
// an invisible parent still lets its own-visible child get evaluated,
// matching VisibleCompound's OR-of-children semantics.
func TestVisitRecursesIntoChildrenRegardlessOfParentVisibility(t *testing.T) {
	parent, _, _ := newTestROI(t, 0.1)
	parent.Visible = false
	child, childGroup, childModels := newTestROI(t, 0.1)
	child.Visible = true
	parent.AddChild(child)
	child.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5)) // put it in front of the default camera.

	c := NewCamera(90, 1, 10, 1, 1)
	f := buildFrustum(c)
	visit(parent, f, c, viewAreaAtOne(c), 1)

	if !childGroup.attached[childModels[0]] {
		t.Errorf("expected visible child to get its lod attached even though its parent is invisible")
	}
}
