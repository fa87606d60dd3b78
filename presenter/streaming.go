package presenter

import (
	"context"
	"time"

	"github.com/legoisland/sceneengine/action"
	"github.com/legoisland/sceneengine/stream"
	"github.com/legoisland/sceneengine/svc"
)

// ChunkSource is the subset of stream.DiskProvider a StreamingPresenter
// needs: schedule one more chunk read, to be delivered back via Deliver.
type ChunkSource interface {
	Schedule(ctx context.Context, controller stream.Controller, objectID uint32, identity any, offset int64, size int) *svc.Error
}

// StreamingPresenter drives a StreamingAction: it requests the next chunk
// whenever its lookahead buffer is empty, merges arrivals, and hands the
// merged buffer to the wrapped inner presenter, matching §4.F.3.
type StreamingPresenter struct {
	*Presenter          // drives the inner action's own state machine.
	Info      *action.StreamingInfo
	Source    ChunkSource
	ChunkSize int

	lastTick time.Time
}

// NewStreamingPresenter wraps a's inner action (a.Kind must be
// action.KindStreaming) with a presenter that also pulls chunks from
// source as needed.
func NewStreamingPresenter(a *action.Action, source ChunkSource, chunkSize int) *StreamingPresenter {
	return &StreamingPresenter{
		Presenter: New(a.Streaming.Inner),
		Info:      a.Streaming,
		Source:    source,
		ChunkSize: chunkSize,
	}
}

// Deliver absorbs a chunk read by Source, satisfying stream.Controller.
func (sp *StreamingPresenter) Deliver(buf *stream.Buffer) {
	sp.Info.MergeChunk(buf)
}

// Tick requests another chunk if the lookahead buffer is empty, advances
// the inner action's loop/repeat bookkeeping, and steps the inner
// presenter's own state machine — matching §4.F.3's tickle behaviour.
func (sp *StreamingPresenter) Tick() {
	if sp.Info.NeedsNextChunk() && sp.Source != nil {
		sp.Source.Schedule(context.Background(), sp, sp.Presenter.Action.ObjectID, sp.Presenter.Action, int64(sp.Info.BufferOffset), sp.ChunkSize)
		sp.Info.BufferOffset += uint32(sp.ChunkSize)
	}

	now := time.Now()
	var dt float32
	if !sp.lastTick.IsZero() {
		dt = float32(now.Sub(sp.lastTick).Seconds())
	}
	sp.lastTick = now
	sp.Info.AdvanceRepeat(dt)

	sp.Presenter.tickle(dt)
}
