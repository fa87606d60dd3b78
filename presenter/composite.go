package presenter

import "github.com/legoisland/sceneengine/action"

// Composite is the notification surface a child Presenter calls back into,
// named directly after §9's composite orchestration hooks
// (on_child_end, on_child_state_changed, promote_next_in_serial,
// composite_state_query).
type Composite interface {
	OnChildEnd(child *Presenter, a *action.Action)
	OnChildStateChanged(child *Presenter)
	PromoteNextInSerial(child *Presenter)
	CompositeStateQuery(target State) bool
}

// ParallelPresenter instantiates every child up front and advances them
// all concurrently (each registered with its own tickle interval); it only
// aggregates their states, matching MxDSParallelAction/§4.F.2's ParallelAction
// behaviour. SelectPresenter reuses it directly, since a deserialized
// SelectAction already holds exactly one surviving child and from here on
// behaves exactly like a Parallel of one.
type ParallelPresenter struct {
	Action   *action.Action
	Children []*Presenter

	ended map[*Presenter]bool

	// OnEnd, if set, fires exactly once, the first tickle pass after
	// every child has reached Done.
	OnEnd func(a *action.Action)

	notified bool
}

// NewParallelPresenter builds child presenters for every action in a's
// composite children and parents them to the returned composite.
func NewParallelPresenter(a *action.Action) *ParallelPresenter {
	cp := &ParallelPresenter{Action: a, ended: map[*Presenter]bool{}}
	for _, c := range a.Children {
		child := New(c)
		child.SetParent(cp)
		cp.Children = append(cp.Children, child)
	}
	return cp
}

// HasTickleStatePassed reports true only once every child has passed
// target, matching §4.F.1's composite rule.
func (cp *ParallelPresenter) HasTickleStatePassed(target State) bool {
	for _, c := range cp.Children {
		if !c.HasTickleStatePassed(target) {
			return false
		}
	}
	return true
}

// Tick advances every child by one tickle pass, satisfying tickle.Client
// so a ParallelPresenter (or a SelectPresenter, built from the same type)
// can be registered with a tickle.Manager directly instead of registering
// each child individually.
func (cp *ParallelPresenter) Tick() {
	for _, c := range cp.Children {
		c.Tick()
	}
}

// OnChildEnd records child as finished one pass and, once every child has
// ended at least once, fires OnEnd exactly one time.
func (cp *ParallelPresenter) OnChildEnd(child *Presenter, a *action.Action) {
	cp.ended[child] = true
	if cp.notified || len(cp.ended) < len(cp.Children) {
		return
	}
	cp.notified = true
	if cp.OnEnd != nil {
		cp.OnEnd(cp.Action)
	}
}

func (cp *ParallelPresenter) OnChildStateChanged(*Presenter) {}

// PromoteNextInSerial is a no-op for a Parallel composite: every child is
// already active.
func (cp *ParallelPresenter) PromoteNextInSerial(*Presenter) {}

// CompositeStateQuery delegates to HasTickleStatePassed.
func (cp *ParallelPresenter) CompositeStateQuery(target State) bool {
	return cp.HasTickleStatePassed(target)
}

// SerialPresenter instantiates only its first child as active; later
// children stay Idle until PromoteNextInSerial fires, matching
// MxDSSerialAction/§4.F.2's SerialAction behaviour.
type SerialPresenter struct {
	Action   *action.Action
	Children []*Presenter
	current  int

	OnEnd    func(a *action.Action)
	notified bool
}

// NewSerialPresenter builds child presenters for a's children, in order.
func NewSerialPresenter(a *action.Action) *SerialPresenter {
	sp := &SerialPresenter{Action: a}
	for _, c := range a.Children {
		child := New(c)
		child.SetParent(sp)
		sp.Children = append(sp.Children, child)
	}
	return sp
}

// Active returns the one child currently allowed to advance, or nil if
// every child has finished.
func (sp *SerialPresenter) Active() *Presenter {
	if sp.current >= len(sp.Children) {
		return nil
	}
	return sp.Children[sp.current]
}

// Tick advances only the currently-active child, satisfying tickle.Client
// so a SerialPresenter can be registered with a tickle.Manager directly.
func (sp *SerialPresenter) Tick() {
	if c := sp.Active(); c != nil {
		c.Tick()
	}
}

// HasTickleStatePassed is true once every child in order has passed
// target: the active one plus every child already promoted past.
func (sp *SerialPresenter) HasTickleStatePassed(target State) bool {
	if sp.current < len(sp.Children) {
		return false
	}
	for _, c := range sp.Children {
		if !c.HasTickleStatePassed(target) {
			return false
		}
	}
	return true
}

// OnChildEnd promotes the next child in sequence, or — if child was the
// last one — fires OnEnd exactly once.
func (sp *SerialPresenter) OnChildEnd(child *Presenter, a *action.Action) {
	sp.PromoteNextInSerial(child)
}

func (sp *SerialPresenter) OnChildStateChanged(*Presenter) {}

// PromoteNextInSerial advances the active-child cursor past child and, if
// nothing remains, fires OnEnd.
func (sp *SerialPresenter) PromoteNextInSerial(child *Presenter) {
	if sp.Active() != child {
		return
	}
	sp.current++
	if sp.current >= len(sp.Children) {
		if !sp.notified {
			sp.notified = true
			if sp.OnEnd != nil {
				sp.OnEnd(sp.Action)
			}
		}
		return
	}
}

// CompositeStateQuery delegates to HasTickleStatePassed.
func (sp *SerialPresenter) CompositeStateQuery(target State) bool {
	return sp.HasTickleStatePassed(target)
}

// NewSelectPresenter builds a composite presenter for a deserialized
// SelectAction — which, by the time it reaches here, already holds
// exactly one surviving child — so it behaves exactly like a Parallel of
// one.
func NewSelectPresenter(a *action.Action) *ParallelPresenter { return NewParallelPresenter(a) }
