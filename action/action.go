// Package action models the SI action tree: the data scripted into a disk
// image that drives a presenter's playback of a piece of media (an
// animation, a still, a sound, an event, an object message) or a group of
// such actions run in parallel, in series, or as a single selected choice.
//
// The original engine expressed this as a deep virtual-inheritance chain
// (MxDSAction -> MxDSMultiAction -> MxDSParallelAction/MxDSSerialAction/
// MxDSSelectAction, and MxDSAction -> MxDSMediaAction -> MxDSAnim/MxDSStill/
// MxDSSound/MxDSEvent/MxDSObjectAction, plus MxDSStreamingAction wrapping
// any of the above). Here that hierarchy is flattened into one concrete
// Action carrying a Kind tag; behaviour that used to live in overridden
// virtual methods is a handful of functions that switch on Kind.
package action

import (
	"math"

	"github.com/legoisland/sceneengine/math/lin"
)

// Kind tags which variant of the flattened Action union a value holds.
type Kind int

const (
	KindLeaf Kind = iota
	KindParallel
	KindSerial
	KindSelect
	KindAnim
	KindStill
	KindSound
	KindEvent
	KindObjectAction
	KindStreaming
)

// IsMulti reports whether k composes other actions (Parallel, Serial, or
// Select).
func (k Kind) IsMulti() bool {
	return k == KindParallel || k == KindSerial || k == KindSelect
}

// IsMedia reports whether k carries a MediaInfo payload.
func (k Kind) IsMedia() bool {
	return k >= KindAnim && k <= KindObjectAction
}

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindParallel:
		return "parallel"
	case KindSerial:
		return "serial"
	case KindSelect:
		return "select"
	case KindAnim:
		return "anim"
	case KindStill:
		return "still"
	case KindSound:
		return "sound"
	case KindEvent:
		return "event"
	case KindObjectAction:
		return "objectAction"
	case KindStreaming:
		return "streaming"
	}
	return "unknown"
}

// Flags mirrors MxDSAction's m_flags bitmask. Only bits the original header
// documents a purpose for get a name; the rest are carried as opaque,
// numbered bits so a round-tripped action never silently loses state.
type Flags uint32

const (
	FlagLooping    Flags = 0x001 // c_looping: loop_count governs repeats.
	FlagBit3       Flags = 0x004
	FlagBit4       Flags = 0x008
	FlagBit5       Flags = 0x010
	FlagEnabled    Flags = 0x020 // c_enabled
	FlagBit7       Flags = 0x040
	FlagWorldSpace Flags = 0x080 // c_world: location/direction/up are world-space, not parent-relative.
	FlagBit9       Flags = 0x100
	FlagBit10      Flags = 0x200
	FlagBit11      Flags = 0x400
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Sentinels matching MxDSAction's INT_MIN/FLT_MAX "unset" convention, and
// MxDSAction::m_loopCount's -1 "infinite" convention.
const (
	DurationUnset   = int32(math.MinInt32)
	LoopInfinite    = int32(-1)
	LoopUnspecified = int32(-1)
)

// FloatUnset marks a Location/Direction/Up component as not-yet-assigned,
// matching the original's FLT_MAX sentinel.
const FloatUnset = float64(math.MaxFloat32)

func vecUnset(v *lin.V3) bool { return v.X == FloatUnset && v.Y == FloatUnset && v.Z == FloatUnset }

func unsetVec() lin.V3 { return lin.V3{X: FloatUnset, Y: FloatUnset, Z: FloatUnset} }

// Action is the flattened union described at the package level. Exactly
// the fields relevant to Kind are meaningful; the zero value is a disabled
// leaf action with no duration.
type Action struct {
	AtomID   string
	ObjectID uint32
	Kind     Kind
	Flags    Flags

	StartTime int32
	duration  int32 // DurationUnset until SetDuration or a deserialized value is applied.
	LoopCount int32

	Location  lin.V3
	Direction lin.V3
	Up        lin.V3

	Extra []byte

	Aux    *Action // m_unk0x84: an auxiliary action object, when present.
	Origin *Action // m_origin: the action (if any) that spawned this one.

	StartTimestamp int64 // m_unk0x90, set by SetUnknown90 at tickle-start.

	Children []*Action // populated when Kind.IsMulti().
	Media    *MediaInfo
	Streaming *StreamingInfo
}

// New returns a leaf Action with no duration set and c_enabled raised,
// matching the base MxDSAction default.
func New(objectID uint32) *Action {
	return &Action{
		ObjectID:  objectID,
		Kind:      KindLeaf,
		Flags:     FlagEnabled,
		StartTime: 0,
		duration:  DurationUnset,
		LoopCount: LoopUnspecified,
		Location:  unsetVec(),
		Direction: unsetVec(),
		Up:        unsetVec(),
	}
}

// Duration returns the explicit duration if one was set, otherwise the
// value computed for this Kind (Parallel/Serial defer to their composite
// formula; media kinds fall back to their sustain time; a bare leaf or an
// unset media duration reports zero).
func (a *Action) Duration() int32 {
	if a.duration != DurationUnset {
		return a.duration
	}
	switch a.Kind {
	case KindParallel:
		return parallelDuration(a)
	case KindSerial:
		return serialDuration(a)
	case KindSelect:
		return parallelDuration(a) // a Select is a Parallel with one surviving child.
	}
	if a.Media != nil {
		return a.Media.SustainTime
	}
	return 0
}

// HasPlacement reports whether this action carries an explicit
// location, matching the deserialize-or-merge convention that an unset
// Location/Direction/Up stays at the FloatUnset sentinel until set.
// Direction and Up are not checked independently: §4.A's local-transform
// compose only needs a location to place an ROI, falling back to the
// world axes for direction/up via RightHandedBasis's degenerate case.
func (a *Action) HasPlacement() bool { return !vecUnset(&a.Location) }

// PlacementVectors returns this action's Location, Direction, and Up,
// substituting well-formed defaults for Direction/Up when either was
// never set: an unset Direction becomes the zero vector, which
// RightHandedBasis treats as degenerate and resolves to the world axes;
// an unset Up becomes the world-up axis (0,1,0), the conventional
// default orientation when only a facing direction was given.
func (a *Action) PlacementVectors() (p, d, u lin.V3) {
	p = a.Location
	d = a.Direction
	if vecUnset(&d) {
		d = lin.V3{}
	}
	u = a.Up
	if vecUnset(&u) {
		u = lin.V3{Y: 1}
	}
	return p, d, u
}

// SetDuration overrides the computed duration with an explicit value,
// matching MxDSAction::SetDuration's direct field assignment.
func (a *Action) SetDuration(d int32) { a.duration = d }

// HasDuration reports whether an explicit duration override is present.
func (a *Action) HasDuration() bool { return a.duration != DurationUnset }

// SustainOrDuration returns the end-time contribution a single action
// makes within a composite: its own duration, or — for a looping action —
// an unbounded sentinel the caller must special-case. Composites treat
// FlagLooping/FlagBit3 children as contributing just their own duration
// once (matching MxDSParallelAction::GetDuration's looping handling: a
// looping child's single pass still bounds the parallel group).
func (a *Action) elapsedDurationForComposite() int32 {
	d := a.Duration()
	if d == DurationUnset {
		return 0
	}
	return d
}

// HasId reports whether objectID matches this action or, recursively, any
// child/internal action — mirroring MxDSAction::HasId's per-Kind override.
func (a *Action) HasId(objectID uint32) bool {
	if a == nil {
		return false
	}
	if a.ObjectID == objectID {
		return true
	}
	for _, c := range a.Children {
		if c.HasId(objectID) {
			return true
		}
	}
	if a.Streaming != nil && a.Streaming.Inner.HasId(objectID) {
		return true
	}
	return false
}

// SetAtomID sets the atom id on this action and, for composites, recurses
// to every child — matching MxDSMultiAction::SetAtomId.
func (a *Action) SetAtomID(id string) {
	a.AtomID = id
	for _, c := range a.Children {
		c.SetAtomID(id)
	}
	if a.Streaming != nil {
		a.Streaming.Inner.SetAtomID(id)
	}
}

// Clone returns a deep copy: children, media info, and streaming state are
// all duplicated rather than shared.
func (a *Action) Clone() *Action {
	if a == nil {
		return nil
	}
	c := *a
	c.Extra = append([]byte(nil), a.Extra...)
	c.Aux = a.Aux.Clone()
	c.Origin = a.Origin // origin is a reference to the spawning action, not owned.
	if a.Children != nil {
		c.Children = make([]*Action, len(a.Children))
		for i, child := range a.Children {
			c.Children[i] = child.Clone()
		}
	}
	if a.Media != nil {
		m := *a.Media
		c.Media = &m
	}
	if a.Streaming != nil {
		s := *a.Streaming
		s.Inner = a.Streaming.Inner.Clone()
		c.Streaming = &s
	}
	return &c
}

// MergeFrom copies every field set (non-sentinel) in src into a, matching
// MxDSAction::MergeFrom: a src value equal to the "unset" sentinel leaves
// a's existing value untouched, and the two extra-data blocks are
// concatenated with a NUL separator rather than one replacing the other.
func (a *Action) MergeFrom(src *Action) {
	if src.StartTime != DurationUnset {
		a.StartTime = src.StartTime
	}
	if src.duration != DurationUnset {
		a.duration = src.duration
	}
	if src.LoopCount != LoopUnspecified {
		a.LoopCount = src.LoopCount
	}
	if !vecUnset(&src.Location) {
		a.Location = src.Location
	}
	if !vecUnset(&src.Direction) {
		a.Direction = src.Direction
	}
	if !vecUnset(&src.Up) {
		a.Up = src.Up
	}
	a.Flags |= src.Flags
	if len(src.Extra) > 0 {
		if len(a.Extra) > 0 {
			a.Extra = append(append(append([]byte(nil), a.Extra...), 0), src.Extra...)
		} else {
			a.Extra = append([]byte(nil), src.Extra...)
		}
	}
}

// ElapsedTime returns the time since StartTimestamp was last set via
// StartTickle, in the same clock units as nowMs — matching
// MxDSAction::GetElapsedTime.
func (a *Action) ElapsedTime(nowMs int64) int64 { return nowMs - a.StartTimestamp }

// StartTickle records the moment tickling of this action began, matching
// MxDSAction::SetUnknown90.
func (a *Action) StartTickle(nowMs int64) { a.StartTimestamp = nowMs }
