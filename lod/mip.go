package lod

import (
	"image"

	"golang.org/x/image/draw"
)

// BuildMipLOD downsamples src by scale (0 < scale < 1) to produce a
// coarser texture variant suitable for a lower-detail LOD entry. A
// bilinear filter is used rather than a hand-written box filter, since
// the quality difference only matters for the highest LOD and bilinear
// is cheap enough to run at load time for every coarser one.
func BuildMipLOD(src image.Image, scale float64) image.Image {
	if scale <= 0 || scale >= 1 {
		return src
	}
	b := src.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// BuildMipChain is a LOD-list producer (component B): given a single
// full-detail texture and ascending poly/vert counts per level, it
// creates a capacity-len(scales) ViewLODList in cache under name, one
// entry per scale factor, each carrying a BuildMipLOD downsample of
// base sized for that level of detail — the lowest-index entry is the
// coarsest, matching List's increasing-complexity ordering invariant.
// polys and verts must have the same length as scales; base may be nil
// for an untextured object, in which case every level is untextured.
func BuildMipChain(cache *Cache, name string, groupIndex int, base image.Image, scales []float64, polys, verts []int, avgPolyArea float64) *ViewLODList {
	list := cache.Create(name, len(scales))
	for i, scale := range scales {
		m := NewMesh(groupIndex)
		if base != nil {
			m.SetTextureKeepColor(BuildMipLOD(base, scale))
		}
		list.Push(NewViewLOD(m, polys[i], verts[i], avgPolyArea))
	}
	return list
}
