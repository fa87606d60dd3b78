package view

import (
	"testing"

	"github.com/legoisland/sceneengine/lod"
)

// buildList returns a ViewLODList whose entries have the given area
// thresholds, in increasing-detail order, via a throwaway one-off cache
// (selectLOD never touches the cache itself).
func buildList(t *testing.T, thresholds ...float64) *lod.ViewLODList {
	t.Helper()
	cache := lod.NewCache()
	list := cache.Create("test", len(thresholds))
	for _, th := range thresholds {
		if !list.Push(lod.NewViewLOD(lod.NewMesh(0), 1, 0, th)) {
			t.Fatalf("expected push within capacity to succeed")
		}
	}
	return list
}

// TestSelectLODPicksMostDetailedQualifyingEntry checks that when the
// projected area clears every entry's threshold, the most detailed
// (highest index) entry wins.
func TestSelectLODPicksMostDetailedQualifyingEntry(t *testing.T) {
	list := buildList(t, 0.1, 1.0, 10.0)
	// radius=2, depth=0.5, areaAtOne=1 -> projected = pi*4/0.25 = ~50.3.
	got := selectLOD(list, 2, 0.5, 1, 1)
	if want := 2; got != want {
		t.Errorf(format, got, want)
	}
}

// TestSelectLODFallsBackToCoarsestWhenNothingQualifies checks that a
// small, distant object that doesn't clear even the coarsest entry's
// threshold still resolves to the coarsest entry rather than hiding.
func TestSelectLODFallsBackToCoarsestWhenNothingQualifies(t *testing.T) {
	list := buildList(t, 0.1, 1.0, 10.0)
	// radius=1, depth=2, areaAtOne=1 -> projected = pi/4 = ~0.785.
	got := selectLOD(list, 1, 2, 1, 1)
	if want := 0; got != want {
		t.Errorf(format, got, want)
	}
}

// TestSelectLODTieBreaksTowardCoarserEntry checks that when two entries
// share the same area threshold, the earlier (coarser) one wins.
func TestSelectLODTieBreaksTowardCoarserEntry(t *testing.T) {
	list := buildList(t, 0.1, 5.0, 5.0)
	got := selectLOD(list, 2, 0.5, 1, 1) // same large projected area as above.
	if want := 1; got != want {
		t.Errorf(format, got, want)
	}
}

// TestSelectLODHidesObjectBehindCamera checks that a non-positive depth
// (the object is at or behind the camera plane) returns ForceHideLOD
// rather than a real index.
func TestSelectLODHidesObjectBehindCamera(t *testing.T) {
	list := buildList(t, 0.1, 1.0)
	got := selectLOD(list, 1, 0, 1, 1)
	if want := ForceHideLOD; got != want {
		t.Errorf(format, got, want)
	}
}

// TestSelectLODHidesWhenListEmpty checks that a nil or empty LOD list
// resolves to ForceHideLOD rather than panicking.
func TestSelectLODHidesWhenListEmpty(t *testing.T) {
	if got := selectLOD(nil, 1, 1, 1, 1); got != ForceHideLOD {
		t.Errorf(format, got, ForceHideLOD)
	}
}
