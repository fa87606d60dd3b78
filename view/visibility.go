package view

import (
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/roi"
)

// visit recursively walks node and its compound children (§4.D.4): it
// culls against frustum, picks a detail level for any geometry-bearing
// node that survives culling, and recurses regardless of this node's
// own visibility, since a compound's children carry their own
// visibility flags independent of their parent's.
func visit(node *roi.OrientableROI, frustum *lin.Frustum, cam *Camera, areaAtOne, userMaxLODPower float64) {
	visible := node.Visible && frustum.IntersectsAABB(node.WorldBoundingBox())

	if node.Geometry != nil {
		lodIndex := ForceHideLOD
		if visible {
			lodIndex = detailLevel(node, cam, areaAtOne, userMaxLODPower)
		}
		applyLOD(node, lodIndex)
	}

	for _, child := range node.Children() {
		visit(child, frustum, cam, areaAtOne, userMaxLODPower)
	}
}

// detailLevel resolves node's current LOD selection: ForceHideLOD if it
// carries no LOD list, the sentinel-respecting projected-size pick
// otherwise (§4.D.3).
func detailLevel(node *roi.OrientableROI, cam *Camera, areaAtOne, userMaxLODPower float64) int {
	lods := node.LODs()
	if lods == nil {
		return ForceHideLOD
	}
	sphere := node.WorldBoundingSphere()
	camPoint := lin.NewV3().Set(sphere.Center)
	cam.Transform.Inv(camPoint)
	depth := -camPoint.Z // camera looks down -Z; depth is positive in front of it.
	return selectLOD(lods, sphere.Radius, depth, userMaxLODPower, areaAtOne)
}

// applyLOD attaches/detaches render.Group geometry to make node's
// Geometry reflect lodIndex, skipping the attach/detach pair entirely
// when the selection hasn't changed since the last pass — the
// LastLOD-cached optimization §4.D.4 calls for.
func applyLOD(node *roi.OrientableROI, lodIndex int) {
	if lodIndex == node.LastLOD {
		return
	}
	lods := node.LODs()
	if node.LastLOD >= 0 && lods != nil && node.LastLOD < lods.Len() {
		if m := lods.At(node.LastLOD).Model; m != nil {
			node.Geometry.Detach(m)
		}
	}
	if lodIndex >= 0 && lods != nil && lodIndex < lods.Len() {
		if m := lods.At(lodIndex).Model; m != nil {
			node.Geometry.Attach(m)
		}
	}
	node.LastLOD = lodIndex
}
