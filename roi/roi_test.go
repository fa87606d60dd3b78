package roi

import (
	"testing"

	"github.com/legoisland/sceneengine/lod"
	"github.com/legoisland/sceneengine/math/lin"
)

const format = "\ngot\n%v\nwanted\n%v"

// TestSetLocalTransformUpdatesWorldSphere checks the quantified invariant
// of §8: after set_local_transform(M), the world bounding sphere equals
// the model-space sphere transformed by M.
func TestSetLocalTransformUpdatesWorldSphere(t *testing.T) {
	modelSphere := lin.Sphere{Center: lin.NewV3S(0, 0, 0), Radius: 2}
	o := NewOrientableROI("ship", modelSphere)

	xf := lin.NewT().SetLoc(10, 0, 0)
	o.SetLocalTransform(xf)

	want := lin.NewV3S(10, 0, 0)
	if !o.WorldBoundingSphere().Center.Aeq(want) {
		t.Errorf(format, o.WorldBoundingSphere().Center.Dump(), want.Dump())
	}
	if o.WorldBoundingSphere().Radius != 2 {
		t.Errorf(format, o.WorldBoundingSphere().Radius, 2)
	}
}

func TestUpdateWorldDataComposesWithParent(t *testing.T) {
	parent := NewOrientableROI("parent", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	child := NewOrientableROI("child", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	parent.AddChild(child)

	parent.SetLocalTransform(lin.NewT().SetLoc(10, 0, 0))
	child.SetLocalTransform(lin.NewT().SetLoc(1, 0, 0))

	parent.UpdateWorldData(lin.NewT())

	want := lin.NewV3S(11, 0, 0)
	if !child.LocalToWorld().Loc.Aeq(want) {
		t.Errorf(format, child.LocalToWorld().Loc.Dump(), want.Dump())
	}
}

func TestFindChildDepthFirst(t *testing.T) {
	root := NewROI("root")
	mid := NewROI("mid")
	leaf := NewROI("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if root.FindChild("leaf") != leaf {
		t.Errorf("expected depth-first FindChild to locate nested leaf")
	}
	if root.FindChild("missing") != nil {
		t.Errorf("expected FindChild miss to return nil")
	}
}

func TestVisibleCompoundIsOrOfChildren(t *testing.T) {
	root := NewROI("root")
	root.Visible = false
	child := NewROI("child")
	child.Visible = true
	root.AddChild(child)

	if !root.VisibleCompound() {
		t.Errorf("expected compound visibility to be true when a child is visible")
	}
}

func TestSetVisibleIdempotent(t *testing.T) {
	o := NewROI("thing")
	o.SetVisible(true)
	o.SetVisible(true)
	if !o.Visible {
		t.Errorf("expected repeated SetVisible(true) to leave it visible")
	}
}

func TestDefaultIntrinsicImportance(t *testing.T) {
	o := NewROI("thing")
	if o.IntrinsicImportance != DefaultIntrinsicImportance {
		t.Errorf(format, o.IntrinsicImportance, DefaultIntrinsicImportance)
	}
}

func TestDestroyReleasesLODs(t *testing.T) {
	cache := lod.NewCache()
	list := cache.Create("robot", 1)
	o := NewROI("robot-instance")
	o.SetLODs(cache, list)

	o.Destroy(cache)
	if got := cache.Lookup("robot"); got != nil {
		t.Errorf("expected Destroy to release the LOD list back to the cache")
	}
}

func TestLastLODInitializedUnset(t *testing.T) {
	o := NewOrientableROI("thing", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	if o.LastLOD != LastLODUnset {
		t.Errorf(format, o.LastLOD, LastLODUnset)
	}
}
