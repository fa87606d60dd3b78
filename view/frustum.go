// Package view implements the view manager (component F): building a
// camera frustum, culling the ROI graph against it, choosing a
// projected-size LOD level for each visible ROI, keeping the renderer
// scene graph in sync, and screen-space picking.
package view

import (
	"github.com/legoisland/sceneengine/math/lin"
)

// Camera describes the viewer a Manager builds its frustum from: a
// world transform (Loc/Rot, looking down its own -Z axis) plus the
// perspective parameters needed to turn that transform into a
// view-projection matrix.
type Camera struct {
	Transform lin.T

	FovDegrees float64
	Front      float64
	Back       float64
	Width      int
	Height     int
}

// NewCamera returns a camera at the identity transform with the given
// perspective parameters.
func NewCamera(fovDegrees, front, back float64, width, height int) *Camera {
	c := &Camera{FovDegrees: fovDegrees, Front: front, Back: back, Width: width, Height: height}
	c.Transform.Set(lin.NewT())
	return c
}

// vpMatrix builds the combined view-projection matrix for camera c by
// combining a view matrix (from the camera's world transform) with a
// standard perspective projection. Feeding the result to Frustum.Set
// reuses the already-validated Gribb/Hartmann plane extraction in
// math/lin rather than re-deriving each clipping plane from scratch.
func vpMatrix(c *Camera) *lin.M4 {
	aspect := 1.0
	if c.Width > 0 {
		aspect = float64(c.Height) / float64(c.Width)
	}
	proj := lin.NewM4().Persp(c.FovDegrees, aspect, c.Front, c.Back)
	view := viewMatrix(&c.Transform)
	return lin.NewM4().Mult(view, proj)
}

// buildFrustum derives the 6-plane, 8-corner frustum camera c sees.
func buildFrustum(c *Camera) *lin.Frustum {
	return lin.NewFrustum().Set(vpMatrix(c))
}

// viewMatrix builds the world-to-camera matrix for transform t: it
// translates by -t.Loc then rotates by the inverse of t.Rot, so that a
// world point p transforms to camera space as p' = (p-t.Loc)*RotInv.
// TranslateTM prepends the translation (row-vector convention), giving
// exactly that order without needing a separate multiply.
func viewMatrix(t *lin.T) *lin.M4 {
	invRot := lin.NewQ().Inv(t.Rot)
	m := lin.NewM4().SetQ(invRot)
	m.TranslateTM(-t.Loc.X, -t.Loc.Y, -t.Loc.Z)
	return m
}
