package action

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressTracker advances a chain of per-child tweens and reports which
// child is currently active, replacing the hand-rolled "elapsed time vs.
// child boundaries" accumulator a naive port would reach for.
type ProgressTracker struct {
	tweens []*gween.Tween
	index  int
}

// Update advances the active tween by dt and returns its current value,
// whether the whole tracker has finished, and which child index is
// current (advancing past a finished tween other than the last one).
func (p *ProgressTracker) Update(dt float32) (value float32, done bool, index int) {
	if p.index >= len(p.tweens) {
		return 0, true, len(p.tweens) - 1
	}
	value, finished := p.tweens[p.index].Update(dt)
	if finished && p.index < len(p.tweens)-1 {
		p.index++
	}
	done = finished && p.index == len(p.tweens)-1
	return value, done, p.index
}

// BuildProgressSequence returns a ProgressTracker for this composite's
// overall playback: for a Serial composite the children's tweens run
// back-to-back, each spanning the child's own duration, so the tracker's
// index doubles as "which child is current". For a Parallel or Select
// composite every child starts together, so the tracker holds a single
// tween spanning the longest child.
//
// Leaf and media actions return a tracker with a single tween spanning
// their own duration.
func (a *Action) BuildProgressSequence() *ProgressTracker {
	switch a.Kind {
	case KindSerial:
		tweens := make([]*gween.Tween, 0, len(a.Children))
		for _, c := range a.Children {
			d := float32(c.elapsedDurationForComposite())
			tweens = append(tweens, gween.New(0, d, d, ease.Linear))
		}
		if len(tweens) == 0 {
			tweens = append(tweens, gween.New(0, 0, 0, ease.Linear))
		}
		return &ProgressTracker{tweens: tweens}
	case KindParallel, KindSelect:
		d := float32(parallelDuration(a))
		return &ProgressTracker{tweens: []*gween.Tween{gween.New(0, d, d, ease.Linear)}}
	default:
		d := float32(a.Duration())
		return &ProgressTracker{tweens: []*gween.Tween{gween.New(0, d, d, ease.Linear)}}
	}
}
