package render

import "github.com/legoisland/sceneengine/math/lin"

// Group is one node of the renderer's scene graph: the retained-mode
// attach point a ViewROI's geometry hangs off of. It is the thing the
// view manager's attach/detach-lod pass (§4.D.4) and the ROI graph's
// "mirror local_to_world onto geometry" invariant (§3.3) both operate
// on, kept in this package since it is the lowest layer both the ROI
// graph and the view manager share without depending on each other.
type Group interface {
	// SetTransform mirrors an owner's local_to_world onto this node.
	SetTransform(t *lin.T)

	// SetBounds mirrors an owner's world bounding sphere onto this
	// node — the geometry a View's Pick tests a ray against, so the
	// pick contract runs entirely inside this package rather than
	// reaching back into the ROI graph.
	SetBounds(s *lin.Sphere)

	// Attach adds model as a drawable child of this group.
	Attach(model Model)
	// Detach removes model from this group, a no-op if absent.
	Detach(model Model)

	// AttachGroup/DetachGroup nest scene-graph groups, the mechanism
	// an OrientableROI's comp children use to sit under their parent's
	// node.
	AttachGroup(child Group)
	DetachGroup(child Group)

	// Parent returns the group this node was last attached under, or
	// nil if it is a top-level (never attached, or detached) node —
	// how a View walks a hit leaf back up to the root group a Pick
	// chain belongs to.
	Parent() Group

	// Models returns the models directly attached to this group, and
	// Children returns the directly attached child groups — the walk
	// View.Render and View.Pick both need, in undefined order.
	Models() []Model
	Children() []Group
}

// group is the default Group implementation: a transform plus the set
// of directly attached models and child groups. It does not know how to
// draw itself — rendering walks the tree and issues Renderer.Render
// calls for each attached Model.
type group struct {
	transform *lin.T
	bounds    lin.Sphere
	models    map[Model]bool
	children  map[Group]bool
	parent    Group
}

// NewGroup returns an empty scene-graph node at the identity transform.
func NewGroup() Group {
	return &group{
		transform: lin.NewT(),
		bounds:    lin.Sphere{Center: lin.NewV3()},
		models:    map[Model]bool{},
		children:  map[Group]bool{},
	}
}

func (g *group) SetTransform(t *lin.T)      { g.transform.Set(t) }
func (g *group) SetBounds(s *lin.Sphere)    { g.bounds.Center.Set(s.Center); g.bounds.Radius = s.Radius }

func (g *group) Attach(model Model) { g.models[model] = true }
func (g *group) Detach(model Model) { delete(g.models, model) }

func (g *group) AttachGroup(child Group) {
	g.children[child] = true
	if c, ok := child.(*group); ok {
		c.parent = g
	}
}
func (g *group) DetachGroup(child Group) {
	delete(g.children, child)
	if c, ok := child.(*group); ok && c.parent == g {
		c.parent = nil
	}
}

func (g *group) Parent() Group { return g.parent }

func (g *group) Models() []Model {
	out := make([]Model, 0, len(g.models))
	for m := range g.models {
		out = append(out, m)
	}
	return out
}

func (g *group) Children() []Group {
	out := make([]Group, 0, len(g.children))
	for c := range g.children {
		out = append(out, c)
	}
	return out
}
