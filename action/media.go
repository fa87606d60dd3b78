package action

// MediaFormat names the payload encoding of a media action's source file,
// mirroring the handful of formats MxDSMediaAction::GetMediaFormat
// distinguishes (FLC/SMK video, MIDI/WAV audio, or a still image).
type MediaFormat int32

const (
	MediaFormatUnknown MediaFormat = iota
	MediaFormatFLC
	MediaFormatSMK
	MediaFormatSTL
	MediaFormatWAV
	MediaFormatMIDI
)

// PaletteMode mirrors MxDSMediaAction::GetPaletteManagement's handling of
// how this media's palette should be merged into the shared screen palette.
type PaletteMode int32

const (
	PaletteModeNone PaletteMode = iota
	PaletteModeReplace
	PaletteModeBlend
)

// MediaInfo is the payload carried by every Kind.IsMedia() Action,
// corresponding to MxDSMediaAction's fields.
type MediaInfo struct {
	SrcPath     string
	FrameRate   int32
	Format      MediaFormat
	PaletteMode PaletteMode
	SustainTime int32

	Volume int32 // MxDSSound::m_volume; 0 (muted) to 0x7f (full). Unused outside KindSound.
}

func newMedia(objectID uint32, kind Kind, srcPath string) *Action {
	a := New(objectID)
	a.Kind = kind
	a.Media = &MediaInfo{SrcPath: srcPath}
	return a
}

// NewAnim returns a KindAnim media action (MxDSAnim).
func NewAnim(objectID uint32, srcPath string) *Action { return newMedia(objectID, KindAnim, srcPath) }

// NewStill returns a KindStill media action (MxDSStill).
func NewStill(objectID uint32, srcPath string) *Action {
	return newMedia(objectID, KindStill, srcPath)
}

// NewSound returns a KindSound media action (MxDSSound) with the given
// playback volume.
func NewSound(objectID uint32, srcPath string, volume int32) *Action {
	a := newMedia(objectID, KindSound, srcPath)
	a.Media.Volume = volume
	return a
}

// NewEvent returns a KindEvent media action (MxDSEvent) — a discrete,
// instantaneous scripted signal rather than a playable stream.
func NewEvent(objectID uint32) *Action { return newMedia(objectID, KindEvent, "") }

// NewObjectAction returns a KindObjectAction media action (MxDSObjectAction)
// — a scripted message targeting another game object.
func NewObjectAction(objectID uint32) *Action { return newMedia(objectID, KindObjectAction, "") }
