package action

import "testing"

type fakeBuf struct{ n int }

func (f fakeBuf) Len() int { return f.n }

func TestNeedsNextChunkUntilPrefetchFilled(t *testing.T) {
	inner := NewStill(1, "a.stl")
	wrapper := NewStreaming(inner, 0)
	s := wrapper.Streaming

	if !s.NeedsNextChunk() {
		t.Errorf(format, false, true)
	}
	s.MergeChunk(fakeBuf{n: 4})
	if !s.NeedsNextChunk() {
		t.Errorf(format, false, true)
	}
	s.MergeChunk(fakeBuf{n: 8})
	if s.NeedsNextChunk() {
		t.Errorf(format, true, false)
	}
}

func TestMergeChunkFillsCurrentBeforePrefetch(t *testing.T) {
	inner := NewStill(1, "a.stl")
	wrapper := NewStreaming(inner, 0)
	s := wrapper.Streaming

	first := fakeBuf{n: 1}
	second := fakeBuf{n: 2}
	s.MergeChunk(first)
	s.MergeChunk(second)

	if s.Current != first {
		t.Errorf(format, s.Current, first)
	}
	if s.Prefetch != second {
		t.Errorf(format, s.Prefetch, second)
	}
}

func TestAdvanceRepeatDecrementsFiniteLoopCount(t *testing.T) {
	inner := NewStill(1, "a.stl")
	inner.SetDuration(10)
	inner.LoopCount = 2
	wrapper := NewStreaming(inner, 5)
	s := wrapper.Streaming
	s.MergeChunk(fakeBuf{n: 1})
	s.BufferOffset = 5

	looped := s.AdvanceRepeat(20)
	if !looped {
		t.Errorf(format, false, true)
	}
	if inner.LoopCount != 1 {
		t.Errorf(format, inner.LoopCount, 1)
	}
	if s.BufferOffset != 0 {
		t.Errorf(format, s.BufferOffset, 0)
	}
}

func TestAdvanceRepeatNoOpWhenLoopCountZero(t *testing.T) {
	inner := NewStill(1, "a.stl")
	inner.SetDuration(10)
	inner.LoopCount = 0
	wrapper := NewStreaming(inner, 0)
	s := wrapper.Streaming

	if s.AdvanceRepeat(1000) {
		t.Errorf(format, true, false)
	}
}

func TestAdvanceRepeatNeverExhaustsInfiniteLoop(t *testing.T) {
	inner := NewStill(1, "a.stl")
	inner.SetDuration(10)
	inner.LoopCount = LoopInfinite
	wrapper := NewStreaming(inner, 0)
	s := wrapper.Streaming

	s.AdvanceRepeat(20)
	if inner.LoopCount != LoopInfinite {
		t.Errorf(format, inner.LoopCount, LoopInfinite)
	}
}
