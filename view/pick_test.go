package view

import (
	"testing"

	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/roi"
)

// TestPickHitsNearestVisibleROI checks that a ray cast toward two
// stacked spheres picks the nearer one.
func TestPickHitsNearestVisibleROI(t *testing.T) {
	near := roi.NewOrientableROI("near", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	near.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))
	far := roi.NewOrientableROI("far", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	far.SetLocalTransform(lin.NewT().SetLoc(0, 0, -10))

	origin := lin.NewV3S(0, 0, 0)
	dir := lin.NewV3S(0, 0, -1)
	got := Pick([]*roi.OrientableROI{near, far}, origin, dir)
	if got != near {
		t.Errorf("expected ray to pick the nearer sphere")
	}
}

// TestPickAttributesChildHitToTopLevelOwner checks that hitting a
// compound child's bounding sphere still reports the top-level root as
// the pick result.
func TestPickAttributesChildHitToTopLevelOwner(t *testing.T) {
	root := roi.NewOrientableROI("root", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	child := roi.NewOrientableROI("child", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	root.AddChild(child)
	child.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))

	origin := lin.NewV3S(0, 0, 0)
	dir := lin.NewV3S(0, 0, -1)
	got := Pick([]*roi.OrientableROI{root}, origin, dir)
	if got != root {
		t.Errorf("expected a hit on a compound child to resolve to its top-level root")
	}
}

// TestPickMissesWhenRayPassesBy checks that a ray that doesn't cross
// any bounding sphere returns nil.
func TestPickMissesWhenRayPassesBy(t *testing.T) {
	far := roi.NewOrientableROI("far", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	far.SetLocalTransform(lin.NewT().SetLoc(100, 100, -5))

	origin := lin.NewV3S(0, 0, 0)
	dir := lin.NewV3S(0, 0, -1)
	if got := Pick([]*roi.OrientableROI{far}, origin, dir); got != nil {
		t.Errorf(format, got, nil)
	}
}

// TestPickIgnoresInvisibleROI checks that an invisible ROI is not
// considered a hit even when the ray crosses its bounding sphere.
func TestPickIgnoresInvisibleROI(t *testing.T) {
	o := roi.NewOrientableROI("hidden", lin.Sphere{Center: lin.NewV3(), Radius: 1})
	o.SetLocalTransform(lin.NewT().SetLoc(0, 0, -5))
	o.Visible = false

	origin := lin.NewV3S(0, 0, 0)
	dir := lin.NewV3S(0, 0, -1)
	if got := Pick([]*roi.OrientableROI{o}, origin, dir); got != nil {
		t.Errorf(format, got, nil)
	}
}
