package presenter

import (
	"context"
	"testing"

	"github.com/legoisland/sceneengine/action"
	"github.com/legoisland/sceneengine/stream"
	"github.com/legoisland/sceneengine/svc"
)

type fakeSource struct {
	calls     int
	lastOff   int64
	lastSize  int
	deliverTo stream.Controller
}

func (f *fakeSource) Schedule(ctx context.Context, controller stream.Controller, objectID uint32, identity any, offset int64, size int) *svc.Error {
	f.calls++
	f.lastOff = offset
	f.lastSize = size
	f.deliverTo = controller
	return nil
}

func TestStreamingPresenterRequestsChunkWhenLookaheadEmpty(t *testing.T) {
	inner := action.NewAnim(7, "movie.flc")
	wrapper := action.NewStreaming(inner, 0)
	src := &fakeSource{}

	sp := NewStreamingPresenter(wrapper, src, 64)
	sp.Tick()

	if src.calls != 1 {
		t.Fatalf(format, src.calls, 1)
	}
	if src.lastOff != 0 || src.lastSize != 64 {
		t.Errorf(format, []int64{src.lastOff, int64(src.lastSize)}, []int64{0, 64})
	}
	if sp.Info.BufferOffset != 64 {
		t.Errorf(format, sp.Info.BufferOffset, 64)
	}
}

func TestStreamingPresenterDeliverFillsCurrentThenPrefetch(t *testing.T) {
	inner := action.NewAnim(7, "movie.flc")
	wrapper := action.NewStreaming(inner, 0)
	src := &fakeSource{}
	sp := NewStreamingPresenter(wrapper, src, 64)

	buf1 := &stream.Buffer{Data: []byte{1, 2, 3, 4}}
	sp.Deliver(buf1)
	if sp.Info.Current != buf1 {
		t.Errorf(format, sp.Info.Current, buf1)
	}
	if !sp.Info.NeedsNextChunk() {
		t.Errorf(format, false, true)
	}

	buf2 := &stream.Buffer{Data: []byte{5, 6, 7, 8}}
	sp.Deliver(buf2)
	if sp.Info.Prefetch != buf2 {
		t.Errorf(format, sp.Info.Prefetch, buf2)
	}
	if sp.Info.NeedsNextChunk() {
		t.Errorf(format, true, false)
	}
}

func TestStreamingPresenterDoesNotRequestWhilePrefetchFilled(t *testing.T) {
	inner := action.NewAnim(7, "movie.flc")
	wrapper := action.NewStreaming(inner, 0)
	src := &fakeSource{}
	sp := NewStreamingPresenter(wrapper, src, 64)

	sp.Deliver(&stream.Buffer{Data: []byte{1}})
	sp.Deliver(&stream.Buffer{Data: []byte{2}})

	sp.Tick()
	if src.calls != 0 {
		t.Errorf(format, src.calls, 0)
	}
}
