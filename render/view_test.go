package render

import (
	"testing"

	"github.com/legoisland/sceneengine/math/lin"
)

const format = "\ngot\n%v\nwanted\n%v"

// fakeGC is a minimal Renderer stand-in recording which models were
// drawn and whether Clear/Color were called, with no real graphics
// context behind it.
type fakeGC struct {
	rendered []Model
	cleared  bool
}

func (g *fakeGC) Init() error                      { return nil }
func (g *fakeGC) Clear()                           { g.cleared = true }
func (g *fakeGC) Color(r, g2, b, a float32)        {}
func (g *fakeGC) Enable(attr uint32, enable bool)  {}
func (g *fakeGC) Viewport(w, h int)                {}
func (g *fakeGC) NewModel(s Shader) Model          { return nil }
func (g *fakeGC) NewShader(name string) Shader     { return nil }
func (g *fakeGC) NewMesh(name string) Mesh         { return nil }
func (g *fakeGC) NewTexture(name string) Texture   { return nil }
func (g *fakeGC) NewAnimation(name string) Animation { return nil }
func (g *fakeGC) Render(m Model)                   { g.rendered = append(g.rendered, m) }

// fakeModel is a minimal Model stand-in, just enough to be a distinct,
// comparable value a fakeGC can record having been asked to draw.
type fakeModel struct{}

func (m *fakeModel) SetMesh(Mesh) Model          { return m }
func (m *fakeModel) AddTexture(Texture) Model    { return m }
func (m *fakeModel) SetDrawMode(int) Model       { return m }
func (m *fakeModel) Set2D(bool) Model            { return m }
func (m *fakeModel) SetCull(bool) Model          { return m }
func (m *fakeModel) Alpha() float64              { return 1 }
func (m *fakeModel) SetAlpha(float64) Model      { return m }
func (m *fakeModel) Colour() (r, g, b float64)   { return 1, 1, 1 }
func (m *fakeModel) SetColour(r, g, b float64) Model { return m }
func (m *fakeModel) SetUniform(string, ...float32) Model { return m }
func (m *fakeModel) Uniform(string) []float32    { return nil }

func TestViewRenderWalksAttachedChildGroups(t *testing.T) {
	gc := &fakeGC{}
	v := newView(gc, 100, 100)

	root := NewGroup()
	child := NewGroup()
	root.AttachGroup(child)

	rootModel, childModel := &fakeModel{}, &fakeModel{}
	root.Attach(rootModel)
	child.Attach(childModel)

	v.Render(root)

	if len(gc.rendered) != 2 {
		t.Fatalf(format, len(gc.rendered), 2)
	}
}

func TestViewPickReturnsNearestFirst(t *testing.T) {
	gc := &fakeGC{}
	v := newView(gc, 100, 100)

	near := NewGroup()
	near.SetBounds(&lin.Sphere{Center: lin.NewV3S(0, 0, -5), Radius: 1})
	far := NewGroup()
	far.SetBounds(&lin.Sphere{Center: lin.NewV3S(0, 0, -20), Radius: 1})

	root := NewGroup()
	root.AttachGroup(far)
	root.AttachGroup(near)
	v.Render(root)

	hits := v.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if len(hits) != 2 {
		t.Fatalf(format, len(hits), 2)
	}
	if hits[0] != near || hits[1] != far {
		t.Errorf(format, hits, []Group{near, far})
	}
}

func TestViewPickFindsNothingOutsideAnyBounds(t *testing.T) {
	gc := &fakeGC{}
	v := newView(gc, 100, 100)

	root := NewGroup()
	off := NewGroup()
	off.SetBounds(&lin.Sphere{Center: lin.NewV3S(10, 10, 10), Radius: 1})
	root.AttachGroup(off)
	v.Render(root)

	hits := v.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if len(hits) != 0 {
		t.Errorf(format, len(hits), 0)
	}
}

func TestViewPickHitChainWalksUpToRenderedRoot(t *testing.T) {
	gc := &fakeGC{}
	v := newView(gc, 100, 100)

	root := NewGroup()
	leaf := NewGroup()
	leaf.SetBounds(&lin.Sphere{Center: lin.NewV3S(0, 0, -5), Radius: 1})
	root.AttachGroup(leaf)
	v.Render(root)

	hits := v.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if len(hits) != 1 {
		t.Fatalf(format, len(hits), 1)
	}
	top := hits[0]
	for top.Parent() != nil {
		top = top.Parent()
	}
	if top != root {
		t.Errorf(format, top, root)
	}
}

func TestViewClearForgetsPreviouslyRenderedRoots(t *testing.T) {
	gc := &fakeGC{}
	v := newView(gc, 100, 100)

	root := NewGroup()
	root.SetBounds(&lin.Sphere{Center: lin.NewV3S(0, 0, -5), Radius: 1})
	v.Render(root)
	v.Clear()

	hits := v.Pick(lin.NewV3S(0, 0, 0), lin.NewV3S(0, 0, -1))
	if len(hits) != 0 {
		t.Errorf(format, len(hits), 0)
	}
}
