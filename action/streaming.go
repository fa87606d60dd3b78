package action

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Buffer is a stand-in for a streamed chunk buffer handle: StreamingInfo
// holds two of them (matching MxDSStreamingAction's m_unk0xa0/m_unk0xa4,
// "possibly current read buffer" / "possibly for prefetch or double
// buffering"), filled in by whichever stream provider is feeding this
// action. The action tree only needs to hold and clear the handle; reading
// its bytes is the stream package's job.
type Buffer interface {
	Len() int
}

// StreamingInfo wraps another action so it can be read incrementally from
// a stream provider rather than all at once, matching MxDSStreamingAction.
type StreamingInfo struct {
	Inner *Action

	BufferOffset uint32 // MxDSStreamingAction::m_bufferOffset
	Progress     int32  // m_unk0x9c: streaming progress/status counter

	Current  Buffer // m_unk0xa0: buffer currently being read
	Prefetch Buffer // m_unk0xa4: buffer being filled ahead of need

	repeat *gween.Tween // m_unk0xa8: accumulated duration across loop repeats
}

// NewStreaming wraps inner for incremental delivery starting at offset.
func NewStreaming(inner *Action, offset uint32) *Action {
	a := New(inner.ObjectID)
	a.Kind = KindStreaming
	a.Streaming = &StreamingInfo{Inner: inner, BufferOffset: offset}
	return a
}

// NeedsNextChunk reports whether the streaming action's lookahead buffer
// is empty and a fresh chunk should be requested from the provider.
func (s *StreamingInfo) NeedsNextChunk() bool { return s.Prefetch == nil }

// MergeChunk absorbs a freshly-delivered chunk. If the current buffer is
// already set this one becomes the prefetch slot; otherwise it becomes the
// current, immediately-readable buffer.
func (s *StreamingInfo) MergeChunk(buf Buffer) {
	if s.Current == nil {
		s.Current = buf
		return
	}
	s.Prefetch = buf
}

// AdvanceRepeat accumulates elapsed time toward the inner action's
// duration and, on a full pass, consumes one loop and resets the cursor
// for the next repeat — matching MxDSStreamingAction::FUN_100cd2d0.
// An inner action whose loop count is LoopInfinite never runs out; a
// non-positive loop count (aside from LoopInfinite) means no further
// repeats are scheduled and AdvanceRepeat is a no-op.
func (s *StreamingInfo) AdvanceRepeat(dtSeconds float32) (looped bool) {
	inner := s.Inner
	if inner.LoopCount == 0 {
		return false
	}
	d := float32(inner.Duration())
	if s.repeat == nil {
		s.repeat = gween.New(0, d, d, ease.Linear)
	}
	_, finished := s.repeat.Update(dtSeconds)
	if !finished {
		return false
	}
	if inner.LoopCount > 0 {
		inner.LoopCount--
	}
	s.repeat = gween.New(0, d, d, ease.Linear)
	s.BufferOffset = 0
	s.Current, s.Prefetch = s.Prefetch, nil
	return true
}
