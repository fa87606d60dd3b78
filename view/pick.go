package view

import (
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/roi"
)

// Pick casts a world-space ray (origin, unit direction dir) directly
// against every visible, geometry-bearing ROI reachable from roots and
// returns the owning top-level ROI of the closest hit — picking a
// sub-part of a compound object always resolves to the compound's
// root, matching the "click anywhere on a model selects the whole
// model" behaviour — or nil if nothing was hit.
//
// This is the headless fallback Manager.Pick uses when no renderer
// view is attached (SetRenderer was never called): with a renderer
// attached, picking instead delegates to the renderer's own View.Pick
// per §4.D.5, and this function is not consulted.
func Pick(roots []*roi.OrientableROI, origin, dir *lin.V3) *roi.OrientableROI {
	var best *roi.OrientableROI
	bestDist := 0.0
	for _, root := range roots {
		if hit, dist, ok := pickWithin(root, root, origin, dir); ok {
			if best == nil || dist < bestDist {
				best, bestDist = hit, dist
			}
		}
	}
	return best
}

// pickWithin recurses node's subtree, reporting the closest ray hit (if
// any) against any descendant's bounding sphere, attributed to owner —
// the top-level ROI the search started from.
func pickWithin(node, owner *roi.OrientableROI, origin, dir *lin.V3) (hit *roi.OrientableROI, dist float64, ok bool) {
	if node.Visible {
		if d, hitSelf := node.WorldBoundingSphere().IntersectRay(origin, dir); hitSelf {
			hit, dist, ok = owner, d, true
		}
	}
	for _, child := range node.Children() {
		if childHit, childDist, childOK := pickWithin(child, owner, origin, dir); childOK {
			if !ok || childDist < dist {
				hit, dist, ok = childHit, childDist, true
			}
		}
	}
	return hit, dist, ok
}
