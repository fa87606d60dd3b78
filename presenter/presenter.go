package presenter

import (
	"time"

	"github.com/legoisland/sceneengine/action"
	"github.com/legoisland/sceneengine/roi"
)

// Presenter drives one Action's tickle state machine. It satisfies
// tickle.Client, so a tickle.Manager can advance it once per pass; no
// other caller is expected to invoke Tick directly.
type Presenter struct {
	Action *action.Action
	State  State

	// ROI, if set, is placed via SetLocalTransformDirUp from the
	// action's Location/Direction/Up the moment playback starts,
	// applying §4.A's local-transform-compose algorithm to a
	// MediaAction's placement fields.
	ROI *roi.OrientableROI

	parent   Composite
	progress *action.ProgressTracker
	lastTick time.Time

	// NotifyAction, if set, is called whenever this presenter reaches
	// Done — the hook a control presenter uses to report a click.
	NotifyAction func(a *action.Action)
}

// New returns an Idle presenter for a.
func New(a *action.Action) *Presenter {
	return &Presenter{Action: a, progress: a.BuildProgressSequence()}
}

// SetParent attaches the composite presenter (if any) that should be
// notified of this presenter's end and state transitions.
func (p *Presenter) SetParent(c Composite) { p.parent = c }

// HasTickleStatePassed reports whether p's state is strictly after target.
func (p *Presenter) HasTickleStatePassed(target State) bool { return p.State.HasPassed(target) }

// Tick advances this presenter by exactly one tickle pass, matching
// tickle.Client. Real elapsed time since the previous Tick drives the
// Repeating stage's progress tracker.
func (p *Presenter) Tick() {
	now := time.Now()
	var dt float32
	if !p.lastTick.IsZero() {
		dt = float32(now.Sub(p.lastTick).Seconds())
	}
	p.lastTick = now
	p.tickle(dt)
}

// tickle runs the actual state machine step; split out from Tick so tests
// can drive it with a synthetic dt instead of real wall-clock time.
func (p *Presenter) tickle(dt float32) {
	prev := p.State
	switch p.State {
	case Idle:
		p.State = Ready
	case Ready:
		p.Action.StartTickle(0)
		if p.ROI != nil && p.Action.HasPlacement() {
			loc, dir, up := p.Action.PlacementVectors()
			p.ROI.SetLocalTransformDirUp(&loc, &dir, &up)
		}
		p.State = Starting
	case Starting:
		p.State = Streaming
	case Streaming:
		p.State = Repeating
	case Repeating:
		_, done, _ := p.progress.Update(dt)
		if done {
			p.State = Freezing
		}
	case Freezing:
		p.State = Done
	case Done:
		p.State = Idle
		if p.parent != nil {
			p.parent.OnChildEnd(p, p.Action)
		}
		if p.NotifyAction != nil {
			p.NotifyAction(p.Action)
		}
	}
	if p.State != prev && p.parent != nil {
		p.parent.OnChildStateChanged(p)
	}
}
