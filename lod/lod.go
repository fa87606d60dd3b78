package lod

import "github.com/legoisland/sceneengine/render"

// LODObject is the abstract coarseness descriptor the view manager's
// projected-size selection (§4.D.3) projects against: how many polygons
// and vertices an entry costs to draw, its average polygon area (used to
// derive the area threshold below which this entry is preferred), and an
// opaque importance weight.
type LODObject interface {
	NumPolys() int
	NumVerts() int
	AvgPolyArea() float64
	Importance() float64
}

// ViewLOD is the concrete LODObject: it owns one mesh-builder-allocated
// sub-mesh group plus the coarseness metrics the view manager reads.
// Flags carries at most four meaningful bits; this package assigns no
// semantics to them beyond storage, matching the "note as open question,
// do not guess intent" guidance for bits whose consumer lies outside
// this core.
type ViewLOD struct {
	Mesh *Mesh

	// Model is the bound, drawable geometry the view manager attaches
	// to a ViewROI's render.Group when this entry is selected, and
	// detaches when a different entry (or none) is. It is nil until
	// the asset pipeline has loaded and bound this detail level.
	Model render.Model

	numPolys    int
	numVerts    int
	avgPolyArea float64
	importance  float64
	Flags       Flags
}

// Flags is ViewLOD's reserved four-bit state field.
type Flags uint8

const (
	FlagBit1 Flags = 1 << iota
	FlagBit2
	FlagBit3
	FlagBit4
)

// NewViewLOD returns a ViewLOD over mesh with the given coarseness
// metrics and the default importance of 1.0.
func NewViewLOD(mesh *Mesh, numPolys, numVerts int, avgPolyArea float64) *ViewLOD {
	return &ViewLOD{Mesh: mesh, numPolys: numPolys, numVerts: numVerts, avgPolyArea: avgPolyArea, importance: 1}
}

func (v *ViewLOD) NumPolys() int          { return v.numPolys }
func (v *ViewLOD) NumVerts() int          { return v.numVerts }
func (v *ViewLOD) AvgPolyArea() float64   { return v.avgPolyArea }
func (v *ViewLOD) Importance() float64    { return v.importance }
func (v *ViewLOD) SetImportance(i float64) { v.importance = i }

// AreaThreshold is the recommended area threshold §4.D.3 selects
// against: avg_poly_area() * num_polys().
func (v *ViewLOD) AreaThreshold() float64 { return v.avgPolyArea * float64(v.numPolys) }

// ============================================================================

// List is an ordered, fixed-capacity collection of LOD entries in order
// of increasing geometric complexity. The producer is responsible for
// pushing entries in sorted order; List never re-sorts, matching §3.2's
// invariant for LODList<T>.
type List[T any] struct {
	capacity int
	entries  []T
}

// NewList returns an empty list with room for capacity entries.
func NewList[T any](capacity int) *List[T] {
	return &List[T]{capacity: capacity, entries: make([]T, 0, capacity)}
}

// Push appends entry to the list. It returns false without modifying
// the list if capacity has been reached.
func (l *List[T]) Push(entry T) bool {
	if len(l.entries) >= l.capacity {
		return false
	}
	l.entries = append(l.entries, entry)
	return true
}

// Len returns the number of entries currently in the list.
func (l *List[T]) Len() int { return len(l.entries) }

// At returns the entry at index i, in increasing-complexity order.
func (l *List[T]) At(i int) T { return l.entries[i] }

// Capacity returns the list's fixed capacity.
func (l *List[T]) Capacity() int { return l.capacity }
