package view

import (
	"testing"

	"github.com/legoisland/sceneengine/math/lin"
)

const format = "\ngot\n%v\nwanted\n%v"

func newBox(minx, miny, minz, maxx, maxy, maxz float64) *lin.AABB {
	return lin.NewAABB().SetS(minx, miny, minz, maxx, maxy, maxz)
}

// TestBuildFrustumMatchesBareProjection checks that a camera sitting at
// the identity transform produces exactly the same frustum as feeding
// its projection matrix directly to lin.Frustum.Set — the camera adds
// no view transform when it hasn't been moved.
func TestBuildFrustumMatchesBareProjection(t *testing.T) {
	c := NewCamera(90, 1, 10, 1, 1)
	f := buildFrustum(c)
	if !f.IntersectsAABB(newBox(0, 0, -5, 1, 1, -4)) {
		t.Errorf("expected box in front of an identity-transform camera to be visible")
	}
	if f.IntersectsAABB(newBox(20, 20, -5, 21, 21, -4)) {
		t.Errorf("expected box well off to the side to be culled")
	}
}

// TestBuildFrustumFollowsCameraTranslation checks that moving the camera
// along +Z shifts the frustum so a world point that used to be behind
// the camera is now in front of it.
func TestBuildFrustumFollowsCameraTranslation(t *testing.T) {
	c := NewCamera(90, 1, 10, 1, 1)
	c.Transform.SetLoc(0, 0, 5)
	f := buildFrustum(c)

	box := newBox(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5) // world origin, camera-space depth 5.
	if !f.IntersectsAABB(box) {
		t.Errorf("expected box at camera-space depth 5 to be visible")
	}
}

// TestBuildFrustumCulledBehindCamera checks that a world point on the
// far side of a translated camera's near plane (i.e. behind it) is
// culled.
func TestBuildFrustumCulledBehindCamera(t *testing.T) {
	c := NewCamera(90, 1, 10, 1, 1)
	c.Transform.SetLoc(0, 0, -20)
	f := buildFrustum(c)

	box := newBox(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5) // camera-space depth -20, behind the camera.
	if f.IntersectsAABB(box) {
		t.Errorf("expected box behind a translated camera to be culled")
	}
}
