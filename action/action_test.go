package action

import "testing"

const format = "\ngot\n%v\nwanted\n%v"

// TestSerialDurationSumsStartPlusDuration checks the concrete example: two
// media children, the first starting at 0 lasting 100, the second starting
// at 50 lasting 200, produce a serial duration of 350.
func TestSerialDurationSumsStartPlusDuration(t *testing.T) {
	first := NewAnim(1, "a.flc")
	first.StartTime = 0
	first.SetDuration(100)
	second := NewAnim(2, "b.flc")
	second.StartTime = 50
	second.SetDuration(200)

	serial := NewSerial(100, first, second)
	if got, want := serial.Duration(), int32(350); got != want {
		t.Errorf(format, got, want)
	}
}

// TestParallelDurationTakesLatestFinish checks that a parallel composite's
// duration is the max of each child's start+duration, not their sum.
func TestParallelDurationTakesLatestFinish(t *testing.T) {
	first := NewAnim(1, "a.flc")
	first.StartTime = 0
	first.SetDuration(100)
	second := NewAnim(2, "b.flc")
	second.StartTime = 50
	second.SetDuration(200)

	parallel := NewParallel(100, first, second)
	if got, want := parallel.Duration(), int32(250); got != want {
		t.Errorf(format, got, want)
	}
}

// TestExplicitDurationOverridesComputed checks that SetDuration bypasses
// the composite formula entirely, matching the C++ base's direct field
// assignment.
func TestExplicitDurationOverridesComputed(t *testing.T) {
	first := NewAnim(1, "a.flc")
	first.SetDuration(100)
	parallel := NewParallel(2, first)
	parallel.SetDuration(9999)
	if got, want := parallel.Duration(), int32(9999); got != want {
		t.Errorf(format, got, want)
	}
}

// TestHasIdFindsSelfOrDescendant checks that HasId recurses into children.
func TestHasIdFindsSelfOrDescendant(t *testing.T) {
	child := NewAnim(42, "c.flc")
	parent := NewSerial(1, child)
	if !parent.HasId(42) {
		t.Errorf("expected parent to report HasId(42) via its child")
	}
	if parent.HasId(999) {
		t.Errorf("expected HasId(999) to be false")
	}
}

// TestSetAtomIDPropagatesToChildren checks that SetAtomID recurses.
func TestSetAtomIDPropagatesToChildren(t *testing.T) {
	child := NewAnim(1, "c.flc")
	parent := NewParallel(2, child)
	parent.SetAtomID("atom-7")
	if parent.AtomID != "atom-7" || child.AtomID != "atom-7" {
		t.Errorf("expected SetAtomID to propagate to every child")
	}
}

// TestCloneIsDeepCopy checks that mutating a clone's children doesn't
// affect the original.
func TestCloneIsDeepCopy(t *testing.T) {
	child := NewAnim(1, "c.flc")
	original := NewParallel(2, child)
	clone := original.Clone()
	clone.Children[0].Media.SrcPath = "mutated.flc"
	if original.Children[0].Media.SrcPath == "mutated.flc" {
		t.Errorf("expected Clone to deep-copy children, not alias them")
	}
}

// TestMergeFromRespectsSentinels checks that an unset field on src leaves
// the destination's existing value untouched, while a set field
// overwrites it.
func TestMergeFromRespectsSentinels(t *testing.T) {
	dst := NewAnim(1, "a.flc")
	dst.StartTime = 10
	dst.SetDuration(50)

	src := New(1)
	src.StartTime = DurationUnset // unset: must not overwrite dst.StartTime
	src.SetDuration(75)           // set: must overwrite dst's duration

	dst.MergeFrom(src)
	if got, want := dst.StartTime, int32(10); got != want {
		t.Errorf(format, got, want)
	}
	if got, want := dst.Duration(), int32(75); got != want {
		t.Errorf(format, got, want)
	}
}

// TestMergeFromConcatenatesExtraData checks that extra-data blocks from
// both sides are preserved, joined rather than one replacing the other.
func TestMergeFromConcatenatesExtraData(t *testing.T) {
	dst := New(1)
	dst.Extra = []byte("first")
	src := New(1)
	src.Extra = []byte("second")

	dst.MergeFrom(src)
	if got, want := string(dst.Extra), "first\x00second"; got != want {
		t.Errorf(format, got, want)
	}
}
