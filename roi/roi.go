// Package roi implements the ROI graph (component D): orientable world
// objects with bounding volumes, LOD lists, and parent/child transforms.
// An ROI owns its children; a parent link is a weak, non-owning
// reference — world-update recursion is top-down, so a child never
// needs to call back into its parent.
//
// §3.3 names three levels — ROI, OrientableROI, ViewROI — as a small
// inheritance chain (visibility/comp/lods, then transform/bounds, then
// a renderer geometry handle). This package flattens that chain into
// one concrete OrientableROI type with an optional geometry handle,
// the same way the action tree's virtual inheritance is flattened to a
// tagged variant (§9): a "ViewROI" is simply an OrientableROI whose
// Geometry field is non-nil, and ViewROI is kept as a type alias so
// call sites can still say what they mean.
package roi

import (
	"github.com/legoisland/sceneengine/lod"
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/render"
)

// DefaultIntrinsicImportance is the weight an ROI carries when nothing
// else has set one explicitly, matching legoroi.h's constant default.
const DefaultIntrinsicImportance = 0.5

// LastLODUnset is the initial value of an OrientableROI's LastLOD
// cache index, matching §3.3's "initialised to -1".
const LastLODUnset = -1

// OrientableROI is a placeable world object: visibility, an optional
// compound-object child list (owned), an optional LOD list (shared via
// lod.Cache), a world transform and derived bounding volumes, a weak
// parent reference, and — when acting as a "ViewROI" — a renderer scene
// graph handle.
type OrientableROI struct {
	Name    string
	Visible bool

	comp []*OrientableROI
	lods *lod.ViewLODList

	IntrinsicImportance float64

	// CurrentFrame is the frame-indexed animation-state hook a
	// presenter uses to report "frame N is current" to a renderer-side
	// group transform; bookkeeping only, not an animation system.
	CurrentFrame int

	localToWorld lin.T
	// localTransform is the parent-relative transform SetLocalTransform
	// was last given; GetLocalTransform derives from it and the parent
	// chain rather than storing the derived value redundantly.
	localTransform lin.T

	worldBox    lin.AABB
	worldSphere lin.Sphere
	modelSphere lin.Sphere // model-space bounding sphere, fixed at construction.

	worldVelocity lin.V3

	parent *OrientableROI // weak; not owned.

	bit1, bit2 bool

	// Geometry is the scene-graph node this ROI's local_to_world is
	// mirrored onto, and LastLOD is the per-instance LOD-level cache
	// index the view manager's attach/detach pass consults (§4.D.4).
	// Both are nil/unset for an ROI that exists only for bookkeeping
	// (e.g. a compound parent with no geometry of its own).
	Geometry render.Group
	LastLOD  int
}

// ViewROI names the same type for call sites that only ever deal with
// geometry-bearing ROIs; see the package doc comment.
type ViewROI = OrientableROI

// NewROI returns a visible, transform-less, geometry-less ROI with the
// default importance — the "ROI" level of §3.3, useful as a pure
// bookkeeping/compound-parent node.
func NewROI(name string) *OrientableROI {
	o := &OrientableROI{Name: name, Visible: true, IntrinsicImportance: DefaultIntrinsicImportance, LastLOD: LastLODUnset}
	o.localToWorld.Set(lin.NewT())
	o.localTransform.Set(lin.NewT())
	return o
}

// NewOrientableROI returns an OrientableROI at the identity transform
// with the given model-space bounding sphere.
func NewOrientableROI(name string, modelSphere lin.Sphere) *OrientableROI {
	o := NewROI(name)
	o.modelSphere = modelSphere
	o.recomputeWorldVolumes()
	return o
}

// NewViewROI returns an OrientableROI additionally carrying geometry,
// the renderer scene-graph node its transform is mirrored onto.
func NewViewROI(name string, modelSphere lin.Sphere, geometry render.Group) *OrientableROI {
	o := NewOrientableROI(name, modelSphere)
	o.Geometry = geometry
	return o
}

// SetVisible sets the visibility flag. Calling it repeatedly with the
// same value is equivalent to calling it once, satisfying the
// idempotence law of §8.
func (o *OrientableROI) SetVisible(v bool) { o.Visible = v }

// LODs returns the ROI's attached LOD list, or nil if it has none.
func (o *OrientableROI) LODs() *lod.ViewLODList { return o.lods }

// SetLODs attaches list as this ROI's LOD list, releasing any list
// already attached back to cache first.
func (o *OrientableROI) SetLODs(cache *lod.Cache, list *lod.ViewLODList) {
	if o.lods != nil && cache != nil {
		cache.Release(o.lods)
	}
	o.lods = list
}

// SetFrame records the current animation frame index, matching
// legoroi.h's SetFrame hook.
func (o *OrientableROI) SetFrame(frame int) { o.CurrentFrame = frame }

// Destroy releases this ROI's LOD list back to cache, detaches its
// geometry from its parent's scene-graph node if any, and recursively
// destroys every child in comp. It does not remove itself from any
// parent's comp list — callers do that first.
func (o *OrientableROI) Destroy(cache *lod.Cache) {
	if o.lods != nil && cache != nil {
		cache.Release(o.lods)
		o.lods = nil
	}
	for _, child := range o.comp {
		child.Destroy(cache)
	}
	o.comp = nil
}

// Children returns this ROI's owned compound children, in add order.
// Callers must not retain or mutate the returned slice across a
// subsequent AddChild call.
func (o *OrientableROI) Children() []*OrientableROI { return o.comp }

// Parent returns the weak parent reference, or nil at the root.
func (o *OrientableROI) Parent() *OrientableROI { return o.parent }

// SetParent reparents o. The next UpdateWorldData call re-derives the
// world transform from the new parent chain.
func (o *OrientableROI) SetParent(p *OrientableROI) { o.parent = p }

// AddChild appends child to this ROI's owned compound list, sets its
// parent weak-reference to o, and nests its geometry (if any) under
// o's geometry (if any).
func (o *OrientableROI) AddChild(child *OrientableROI) {
	child.SetParent(o)
	o.comp = append(o.comp, child)
	if o.Geometry != nil && child.Geometry != nil {
		o.Geometry.AttachGroup(child.Geometry)
	}
}

// LocalToWorld returns this ROI's current world transform.
func (o *OrientableROI) LocalToWorld() *lin.T { return &o.localToWorld }

// WorldBoundingBox returns the current world-space AABB.
func (o *OrientableROI) WorldBoundingBox() *lin.AABB { return &o.worldBox }

// WorldBoundingSphere returns the current world-space bounding sphere.
func (o *OrientableROI) WorldBoundingSphere() *lin.Sphere { return &o.worldSphere }

// WorldVelocity returns the last-computed world-space velocity.
func (o *OrientableROI) WorldVelocity() *lin.V3 { return &o.worldVelocity }

// SetLocalTransform replaces the parent-relative transform, then
// triggers the world-bounding-volume recompute and velocity recompute
// §4.C requires, and mirrors the result onto Geometry if present. It
// does not itself recurse to children — callers drive recursion via
// UpdateWorldData, matching the top-down update model.
func (o *OrientableROI) SetLocalTransform(t *lin.T) {
	prevWorld := lin.NewV3().Set(o.localToWorld.Loc)
	o.localTransform.Set(t)

	// T.Mult(a, b) composes "apply a then b"; the receiver must alias a
	// for its translation-preservation trick to hold, so local is
	// loaded into localToWorld first and the call aliases itself as a.
	o.localToWorld.Set(t)
	if o.parent != nil {
		o.localToWorld.Mult(&o.localToWorld, o.parent.LocalToWorld())
	}
	o.recomputeWorldVolumes()
	o.worldVelocity.Sub(o.localToWorld.Loc, prevWorld)
	o.mirrorGeometry()
}

// SetLocalTransformDirUp is SetLocalTransform expressed in the
// position/direction/up form §4.A's local-transform-compose algorithm
// takes as input, rather than a ready-made lin.T — the form a
// MediaAction's Location/Direction/Up fields naturally arrive in.
func (o *OrientableROI) SetLocalTransformDirUp(p, d, u *lin.V3) {
	t := lin.NewT().SetDirUp(p, d, u)
	o.SetLocalTransform(t)
}

// UpdateWorldData multiplies parentToWorld with this ROI's stored
// local-relative transform, recomputes world bounding volumes and
// velocity, mirrors the result onto Geometry, and recurses to every
// child in comp.
func (o *OrientableROI) UpdateWorldData(parentToWorld *lin.T) {
	prevWorld := lin.NewV3().Set(o.localToWorld.Loc)
	o.localToWorld.Set(&o.localTransform)
	o.localToWorld.Mult(&o.localToWorld, parentToWorld)
	o.recomputeWorldVolumes()
	o.worldVelocity.Sub(o.localToWorld.Loc, prevWorld)
	o.mirrorGeometry()

	for _, child := range o.comp {
		child.UpdateWorldData(&o.localToWorld)
	}
}

// GetLocalTransform returns local_to_world if this ROI has no parent,
// otherwise local_to_world composed with the inverse of the parent's
// local_to_world.
func (o *OrientableROI) GetLocalTransform() *lin.T {
	if o.parent == nil {
		return &o.localToWorld
	}
	parentInv := invertTransform(o.parent.LocalToWorld())
	result := lin.NewT().Set(&o.localToWorld)
	result.Mult(result, parentInv)
	return result
}

// invertTransform returns the rigid-transform inverse of t: the unique
// transform u such that composing t then u (in this package's "apply a
// then b" Mult convention) yields the identity.
func invertTransform(t *lin.T) *lin.T {
	inv := lin.NewT()
	inv.Rot.Inv(t.Rot)
	inv.Loc.Neg(t.Loc)
	inv.Loc.MultvQ(inv.Loc, inv.Rot)
	return inv
}

// mirrorGeometry copies the translation row of local_to_world onto
// Geometry's scene-graph transform, the invariant §3.3 requires of
// every mutation path for a geometry-bearing ROI.
func (o *OrientableROI) mirrorGeometry() {
	if o.Geometry != nil {
		o.Geometry.SetTransform(&o.localToWorld)
		o.Geometry.SetBounds(&o.worldSphere)
	}
}

// recomputeWorldVolumes derives the world bounding sphere (centre
// transformed, radius preserved) and world AABB (envelope of the 8
// transformed sphere-bound-box corners) from the current local_to_world
// and the fixed model-space sphere, per §4.A's recompute algorithm.
func (o *OrientableROI) recomputeWorldVolumes() {
	o.worldSphere.Center.Set(o.modelSphere.Center)
	o.localToWorld.App(o.worldSphere.Center)
	o.worldSphere.Radius = o.modelSphere.Radius

	r := o.modelSphere.Radius
	modelBox := lin.NewAABB().SetS(
		o.modelSphere.Center.X-r, o.modelSphere.Center.Y-r, o.modelSphere.Center.Z-r,
		o.modelSphere.Center.X+r, o.modelSphere.Center.Y+r, o.modelSphere.Center.Z+r,
	)
	o.worldBox.Transform(&o.localToWorld, modelBox)
}

// SetBit1/ClearBit1 mark a two-bit flag the view manager uses to decide
// an ROI needs re-evaluation; bit2 is a sticky companion that is not
// cleared by ClearBit1. Per design note §9's open question, no other
// semantics are assigned to these bits here.
func (o *OrientableROI) SetBit1()   { o.bit1, o.bit2 = true, true }
func (o *OrientableROI) ClearBit1() { o.bit1 = false }
func (o *OrientableROI) Bit1() bool { return o.bit1 }
func (o *OrientableROI) Bit2() bool { return o.bit2 }

// FindChild does a depth-first, case-sensitive search of comp for a
// descendant with the given name, matching legoroi.h's FindChildROI.
func (o *OrientableROI) FindChild(name string) *OrientableROI {
	for _, child := range o.comp {
		if child.Name == name {
			return child
		}
		if found := child.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// VisibleCompound reports whether this ROI, or any descendant in comp,
// is visible — a compound ROI's visibility is the OR of self and
// children.
func (o *OrientableROI) VisibleCompound() bool {
	if o.Visible {
		return true
	}
	for _, child := range o.comp {
		if child.VisibleCompound() {
			return true
		}
	}
	return false
}
