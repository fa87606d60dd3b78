// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// geom.go adds the bounding volumes and view frustum needed to decide
// what is visible and how much detail it needs. These build on the
// existing vector and matrix primitives instead of introducing a
// separate numeric type.

// AABB is an axis aligned bounding box described by its minimum and
// maximum corners.
type AABB struct {
	Min *V3
	Max *V3
}

// NewAABB returns a degenerate bounding box located at the origin.
// Use Set or SetS to give it real dimensions.
func NewAABB() *AABB { return &AABB{NewV3(), NewV3()} }

// Set updates box b to span from min to max. The updated box b is returned.
func (b *AABB) Set(min, max *V3) *AABB {
	b.Min.Set(min)
	b.Max.Set(max)
	return b
}

// SetS updates box b using individual minimum and maximum coordinates.
// The updated box b is returned.
func (b *AABB) SetS(minx, miny, minz, maxx, maxy, maxz float64) *AABB {
	b.Min.SetS(minx, miny, minz)
	b.Max.SetS(maxx, maxy, maxz)
	return b
}

// Center stores the midpoint of box b in v and returns v.
func (b *AABB) Center(v *V3) *V3 {
	v.Add(b.Min, b.Max)
	return v.Scale(v, 0.5)
}

// Empty returns true if box b has no extent along any axis, ie:
// it was never given dimensions with Set or SetS.
func (b *AABB) Empty() bool {
	return b.Min.X >= b.Max.X && b.Min.Y >= b.Max.Y && b.Min.Z >= b.Max.Z
}

// Extend grows box b, if necessary, so that it also contains box a.
// The updated box b is returned.
func (b *AABB) Extend(a *AABB) *AABB {
	b.Min.Min(b.Min, a.Min)
	b.Max.Max(b.Max, a.Max)
	return b
}

// Transform updates box b to be the smallest AABB that contains box a
// after a is repositioned and reoriented by transform t. Box b and a
// must be distinct. The updated box b is returned.
//
// All 8 corners of a are transformed individually since rotation can
// change which corner ends up with the smallest or largest coordinate
// on any given axis.
func (b *AABB) Transform(t *T, a *AABB) *AABB {
	corner := NewV3()
	first := true
	for i := 0; i < 8; i++ {
		x := a.Min.X
		if i&1 != 0 {
			x = a.Max.X
		}
		y := a.Min.Y
		if i&2 != 0 {
			y = a.Max.Y
		}
		z := a.Min.Z
		if i&4 != 0 {
			z = a.Max.Z
		}
		corner.SetS(x, y, z)
		t.App(corner)
		if first {
			b.Min.Set(corner)
			b.Max.Set(corner)
			first = false
		} else {
			b.Min.Min(b.Min, corner)
			b.Max.Max(b.Max, corner)
		}
	}
	return b
}

// ============================================================================

// Sphere is a bounding sphere described by a world space center point
// and a radius.
type Sphere struct {
	Center *V3
	Radius float64
}

// NewSphere returns a zero radius sphere located at the origin.
func NewSphere() *Sphere { return &Sphere{Center: NewV3()} }

// Set updates sphere s to have the given center and radius.
// The updated sphere s is returned.
func (s *Sphere) Set(center *V3, radius float64) *Sphere {
	s.Center.Set(center)
	s.Radius = radius
	return s
}

// FromAABB updates sphere s to be the sphere that circumscribes box a.
// The updated sphere s is returned.
func (s *Sphere) FromAABB(a *AABB) *Sphere {
	a.Center(s.Center)
	s.Radius = s.Center.Dist(a.Max)
	return s
}

// IntersectRay returns the distance along the ray from origin in unit
// direction dir to its nearest intersection with sphere s, and whether
// it intersects at all in front of origin. dir is expected to already
// be unit length.
func (s *Sphere) IntersectRay(origin, dir *V3) (dist float64, hit bool) {
	oc := NewV3().Sub(origin, s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	root := math.Sqrt(disc)
	t := -b - root
	if t < 0 {
		t = -b + root
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ============================================================================

// Plane is a half-space boundary of the form ax+by+cz+d = 0 where
// (a,b,c) is the unit length outward normal and d is the signed
// distance of the plane from the origin along that normal.
type Plane struct {
	A, B, C, D float64
}

// Normalize scales plane p so that its (a,b,c) normal has unit length.
// The updated plane p is returned.
func (p *Plane) Normalize() *Plane {
	len := math.Sqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	if len > Epsilon {
		p.A, p.B, p.C, p.D = p.A/len, p.B/len, p.C/len, p.D/len
	}
	return p
}

// Dist returns the signed distance from plane p to point v. A positive
// distance means v is on the side of the plane the normal points to.
func (p *Plane) Dist(v *V3) float64 { return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D }

// PlaneFromPoints builds the plane through a, b, and c, with its normal
// given by (b-a)×(c-a) — callers order the three points so that normal
// faces the half-space they want considered "inside". The result is
// normalized.
func PlaneFromPoints(a, b, c *V3) Plane {
	ab, ac := NewV3().Sub(b, a), NewV3().Sub(c, a)
	n := NewV3().Cross(ab, ac)
	p := Plane{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(a)}
	return *p.Normalize()
}

// ============================================================================

// Frustum plane indicies, ordered the way they fall out of Gribb/Hartmann
// plane extraction.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the clipped pyramid of space a camera can see, described as
// the intersection of 6 half-spaces. Corners holds the 8 frustum corners
// in world space, near face first: near-left-bottom, near-right-bottom,
// near-right-top, near-left-top, then the same order for the far face.
type Frustum struct {
	Planes  [6]Plane
	Corners [8]V3
}

// NewFrustum returns an empty frustum. Use Set to give it a shape
// from a camera's view-projection matrix.
func NewFrustum() *Frustum { return &Frustum{} }

// Set extracts the 6 bounding planes and 8 corners of frustum f from
// the combined view-projection matrix vp. This is the standard
// Gribb/Hartmann extraction adjusted for this package's row-vector
// convention (p' = p*vp rather than p' = vp*p), which works for any
// projection vp encodes (perspective or orthographic). The updated
// frustum f is returned.
func (f *Frustum) Set(vp *M4) *Frustum {
	f.Planes[FrustumLeft] = Plane{vp.Xw + vp.Xx, vp.Yw + vp.Yx, vp.Zw + vp.Zx, vp.Ww + vp.Wx}
	f.Planes[FrustumRight] = Plane{vp.Xw - vp.Xx, vp.Yw - vp.Yx, vp.Zw - vp.Zx, vp.Ww - vp.Wx}
	f.Planes[FrustumBottom] = Plane{vp.Xw + vp.Xy, vp.Yw + vp.Yy, vp.Zw + vp.Zy, vp.Ww + vp.Wy}
	f.Planes[FrustumTop] = Plane{vp.Xw - vp.Xy, vp.Yw - vp.Yy, vp.Zw - vp.Zy, vp.Ww - vp.Wy}
	f.Planes[FrustumNear] = Plane{vp.Xw + vp.Xz, vp.Yw + vp.Yz, vp.Zw + vp.Zz, vp.Ww + vp.Wz}
	f.Planes[FrustumFar] = Plane{vp.Xw - vp.Xz, vp.Yw - vp.Yz, vp.Zw - vp.Zz, vp.Ww - vp.Wz}
	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	f.setCorners()
	return f
}

// setCorners locates the 8 frustum corners by intersecting triples of
// the 6 planes: (near|far)-(left|right)-(top|bottom).
func (f *Frustum) setCorners() {
	combos := [8][3]int{
		{FrustumNear, FrustumLeft, FrustumBottom},
		{FrustumNear, FrustumRight, FrustumBottom},
		{FrustumNear, FrustumRight, FrustumTop},
		{FrustumNear, FrustumLeft, FrustumTop},
		{FrustumFar, FrustumLeft, FrustumBottom},
		{FrustumFar, FrustumRight, FrustumBottom},
		{FrustumFar, FrustumRight, FrustumTop},
		{FrustumFar, FrustumLeft, FrustumTop},
	}
	for i, c := range combos {
		f.Corners[i] = planeIntersect(f.Planes[c[0]], f.Planes[c[1]], f.Planes[c[2]])
	}
}

// planeIntersect returns the single point common to the 3 given planes
// using Cramer's rule. The planes are expected to be non-parallel, as
// is always the case for the 3 planes meeting at a frustum corner.
func planeIntersect(p1, p2, p3 Plane) V3 {
	n1 := V3{p1.A, p1.B, p1.C}
	n2 := V3{p2.A, p2.B, p2.C}
	n3 := V3{p3.A, p3.B, p3.C}
	cross23, cross31, cross12 := NewV3(), NewV3(), NewV3()
	cross23.Cross(&n2, &n3)
	cross31.Cross(&n3, &n1)
	cross12.Cross(&n1, &n2)
	denom := n1.Dot(cross23)
	if math.Abs(denom) < Epsilon {
		return V3{}
	}
	px := (-p1.D*cross23.X - p2.D*cross31.X - p3.D*cross12.X) / denom
	py := (-p1.D*cross23.Y - p2.D*cross31.Y - p3.D*cross12.Y) / denom
	pz := (-p1.D*cross23.Z - p2.D*cross31.Z - p3.D*cross12.Z) / denom
	return V3{px, py, pz}
}

// IntersectsAABB returns true if any part of box a lies inside, or
// overlaps, frustum f. It uses the standard "n-vertex" test: a box is
// entirely outside if it is entirely on the outer side of any single
// plane, which is both fast and conservative (may keep boxes that
// intersect the frustum at a corner but are otherwise outside).
func (f *Frustum) IntersectsAABB(a *AABB) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		// the AABB vertex furthest in the direction of the plane normal.
		px, py, pz := a.Min.X, a.Min.Y, a.Min.Z
		if p.A >= 0 {
			px = a.Max.X
		}
		if p.B >= 0 {
			py = a.Max.Y
		}
		if p.C >= 0 {
			pz = a.Max.Z
		}
		if p.A*px+p.B*py+p.C*pz+p.D < 0 {
			return false // box is entirely outside this plane.
		}
	}
	return true
}

// IntersectsSphere returns true if any part of sphere s lies inside,
// or overlaps, frustum f.
func (f *Frustum) IntersectsSphere(s *Sphere) bool {
	for i := range f.Planes {
		if f.Planes[i].Dist(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}
