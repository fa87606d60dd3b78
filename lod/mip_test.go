package lod

import (
	"image"
	"testing"
)

func TestBuildMipLODScalesDimensionsDown(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	dst := BuildMipLOD(src, 0.25)
	b := dst.Bounds()
	if b.Dx() != 25 || b.Dy() != 12 {
		t.Errorf(format, [2]int{b.Dx(), b.Dy()}, [2]int{25, 12})
	}
}

func TestBuildMipLODRejectsOutOfRangeScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if got := BuildMipLOD(src, 1); got != src {
		t.Errorf(format, got, src)
	}
	if got := BuildMipLOD(src, 0); got != src {
		t.Errorf(format, got, src)
	}
}

func TestBuildMipLODFloorsToAtLeastOnePixel(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	dst := BuildMipLOD(src, 0.01)
	b := dst.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf(format, [2]int{b.Dx(), b.Dy()}, [2]int{1, 1})
	}
}

func TestBuildMipChainProducesOneEntryPerScale(t *testing.T) {
	cache := NewCache()
	base := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	scales := []float64{0.25, 0.5, 1}
	polys := []int{10, 40, 160}
	verts := []int{8, 30, 120}

	list := BuildMipChain(cache, "prop", 0, base, scales, polys, verts, 2.0)
	defer cache.Release(list)

	if list.Len() != len(scales) {
		t.Fatalf(format, list.Len(), len(scales))
	}
	for i, scale := range scales {
		entry := list.At(i)
		if entry.NumPolys() != polys[i] || entry.NumVerts() != verts[i] {
			t.Errorf(format, [2]int{entry.NumPolys(), entry.NumVerts()}, [2]int{polys[i], verts[i]})
		}
		if !entry.Mesh.IsTextured {
			t.Errorf(format, entry.Mesh.IsTextured, true)
		}
		b := entry.Mesh.Texture().Bounds()
		wantW := int(64 * scale)
		if wantW < 1 {
			wantW = 1
		}
		if b.Dx() != wantW {
			t.Errorf(format, b.Dx(), wantW)
		}
	}
}

func TestBuildMipChainUntexturedWhenBaseNil(t *testing.T) {
	cache := NewCache()
	list := BuildMipChain(cache, "plain", 0, nil, []float64{0.5, 1}, []int{5, 20}, []int{4, 16}, 1.0)
	defer cache.Release(list)

	for i := 0; i < list.Len(); i++ {
		if list.At(i).Mesh.IsTextured {
			t.Errorf(format, true, false)
		}
	}
}
