package view

import (
	"math"

	"github.com/legoisland/sceneengine/lod"
	"github.com/legoisland/sceneengine/math/lin"
)

// AutoLOD and ForceHideLOD are the selection sentinels §4.D.3 calls
// for: AutoLOD means "let projected size choose", ForceHideLOD means
// "never draw this ROI regardless of size".
const (
	AutoLOD      = -1
	ForceHideLOD = -2
)

// viewAreaAtOne is the cross-sectional area, in world units, of the
// view frustum at one unit of depth — the denominator projected area
// is measured against. Derived once per Manager from the camera's fov
// and aspect rather than per-ROI.
func viewAreaAtOne(c *Camera) float64 {
	aspect := 1.0
	if c.Width > 0 {
		aspect = float64(c.Height) / float64(c.Width)
	}
	halfH := math.Tan(lin.Rad(c.FovDegrees) * 0.5)
	halfW := halfH / aspect
	return (2 * halfW) * (2 * halfH)
}

// selectLOD picks an index into list using the projected-size rule of
// §4.D.3: the sphere of radius r at depth z along the camera's forward
// axis projects to an apparent area of π·r²/(z²·viewAreaAtOne); the
// globally configurable userMaxLODPower biases that projected area up
// or down before comparing it against each entry's AreaThreshold, so a
// caller can trade detail for performance without touching per-model
// data. The highest-detail (highest index) entry whose threshold does
// not exceed the biased projected area is returned; ties are broken
// toward the coarser (lower index) entry; if no entry qualifies — the
// object is too small for even the coarsest LOD's threshold — the
// coarsest entry (index 0) is returned.
func selectLOD(list *lod.ViewLODList, radius, depth, userMaxLODPower float64, areaAtOne float64) int {
	if list == nil || list.Len() == 0 {
		return ForceHideLOD
	}
	if depth <= 0 {
		return ForceHideLOD // behind or at the camera.
	}
	projected := math.Pi * radius * radius / (depth * depth * areaAtOne)
	projected *= userMaxLODPower

	selected := 0
	for i := 0; i < list.Len(); i++ {
		threshold := list.At(i).AreaThreshold()
		if threshold <= projected && threshold > list.At(selected).AreaThreshold() {
			selected = i
		}
	}
	return selected
}
