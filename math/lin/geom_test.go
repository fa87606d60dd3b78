// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

// TestFrustumVisible checks that a box squarely in front of the camera,
// inside the near/far clip range and within the field of view, tests
// as visible.
func TestFrustumVisible(t *testing.T) {
	vp := NewM4().Persp(90, 1, 1, 10) // 90 fov, square aspect, near 1, far 10.
	f := NewFrustum().Set(vp)
	box := NewAABB().SetS(0, 0, -5, 1, 1, -4) // camera looks down -Z.
	if !f.IntersectsAABB(box) {
		t.Errorf("expected box in front of the camera to be visible")
	}
}

// TestFrustumCulledBySides checks that a box well outside the lateral
// field of view is culled.
func TestFrustumCulledBySides(t *testing.T) {
	vp := NewM4().Persp(90, 1, 1, 10)
	f := NewFrustum().Set(vp)
	box := NewAABB().SetS(20, 20, -5, 21, 21, -4)
	if f.IntersectsAABB(box) {
		t.Errorf("expected box far off to the side to be culled")
	}
}

// TestFrustumCulledByNear checks that a box closer than the near plane
// is culled.
func TestFrustumCulledByNear(t *testing.T) {
	vp := NewM4().Persp(90, 1, 1, 10)
	f := NewFrustum().Set(vp)
	box := NewAABB().SetS(0, 0, -0.5, 0.1, 0.1, -0.1)
	if f.IntersectsAABB(box) {
		t.Errorf("expected box closer than the near plane to be culled")
	}
}

// TestFrustumCulledByFar checks that a box beyond the far plane is culled.
func TestFrustumCulledByFar(t *testing.T) {
	vp := NewM4().Persp(90, 1, 1, 10)
	f := NewFrustum().Set(vp)
	box := NewAABB().SetS(0, 0, -12, 1, 1, -11)
	if f.IntersectsAABB(box) {
		t.Errorf("expected box beyond the far plane to be culled")
	}
}

func TestAABBTransform(t *testing.T) {
	a := NewAABB().SetS(-1, -1, -1, 1, 1, 1)
	tr := NewT().SetLoc(5, 0, 0)
	b := NewAABB()
	b.Transform(tr, a)
	want := NewAABB().SetS(4, -1, -1, 6, 1, 1)
	if !b.Min.Aeq(want.Min) || !b.Max.Aeq(want.Max) {
		t.Errorf(format, b.Min.Dump()+" "+b.Max.Dump(), want.Min.Dump()+" "+want.Max.Dump())
	}
}

func TestSphereFromAABB(t *testing.T) {
	a := NewAABB().SetS(-1, -1, -1, 1, 1, 1)
	s := NewSphere().FromAABB(a)
	if !s.Center.Aeq(NewV3()) {
		t.Errorf(format, s.Center.Dump(), "0 0 0")
	}
	want := NewV3S(1, 1, 1).Len()
	if !Aeq(s.Radius, want) {
		t.Errorf(format, s.Radius, want)
	}
}
