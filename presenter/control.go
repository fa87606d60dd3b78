package presenter

import "github.com/legoisland/sceneengine/action"

// ControlMode selects how a ControlPresenter maps a click into a choice
// index, matching §4.F.5.
type ControlMode int

const (
	// ControlToggle flips between index 0 and 1 on any click.
	ControlToggle ControlMode = iota
	// ControlGrid maps a click's (x, y) into (col, row) via Columns/Rows
	// and resolves to row*Columns+col.
	ControlGrid
	// ControlMap looks up the clicked pixel's palette index in an
	// allow-list of selectable indices.
	ControlMap
)

// ControlPresenter renders exactly one of N child presenters at a time
// and switches the selection on a hit, matching §4.F.5's toggle/grid/map
// control behaviour. Unlike Parallel/Serial/Select, only the Selected
// child is ever ticked — the others are paused.
type ControlPresenter struct {
	Action   *action.Action
	Children []*Presenter
	Mode     ControlMode
	Selected int

	Columns, Rows int
	// AllowedIndices is consulted by ControlMap: a click resolves to a
	// palette index via PaletteIndexAt, and the click only selects if
	// that index appears in AllowedIndices.
	AllowedIndices []int
	// PaletteIndexAt maps a clicked pixel to a palette index, for
	// ControlMap. Unused by the other modes.
	PaletteIndexAt func(x, y int) int

	// NotifyAction fires whenever a click changes the selection.
	NotifyAction func(a *action.Action)
}

// NewControlPresenter builds one child presenter per entry in children and
// enables only the one at Selected (0 by default).
func NewControlPresenter(a *action.Action, children []*action.Action, mode ControlMode) *ControlPresenter {
	cpr := &ControlPresenter{Action: a, Mode: mode}
	for _, c := range children {
		cpr.Children = append(cpr.Children, New(c))
	}
	return cpr
}

// Tick advances only the currently selected child.
func (cp *ControlPresenter) Tick() {
	if cp.Selected >= 0 && cp.Selected < len(cp.Children) {
		cp.Children[cp.Selected].Tick()
	}
}

// HandleClick resolves a click at (x, y) into a selection index per Mode,
// enables that child and disables the rest, and fires NotifyAction if the
// selection changed. It reports whether the click resolved to a valid
// selection at all (a ControlMap click outside the allow-list does not).
func (cp *ControlPresenter) HandleClick(x, y int) bool {
	next, ok := cp.resolve(x, y)
	if !ok {
		return false
	}
	if next == cp.Selected {
		return true
	}
	cp.Selected = next
	if cp.NotifyAction != nil && next >= 0 && next < len(cp.Children) {
		cp.NotifyAction(cp.Children[next].Action)
	}
	return true
}

func (cp *ControlPresenter) resolve(x, y int) (int, bool) {
	switch cp.Mode {
	case ControlToggle:
		return 1 - cp.Selected, true
	case ControlGrid:
		if cp.Columns <= 0 || cp.Rows <= 0 {
			return 0, false
		}
		col := x
		row := y
		if col < 0 || col >= cp.Columns || row < 0 || row >= cp.Rows {
			return 0, false
		}
		return row*cp.Columns + col, true
	case ControlMap:
		if cp.PaletteIndexAt == nil {
			return 0, false
		}
		idx := cp.PaletteIndexAt(x, y)
		for _, allowed := range cp.AllowedIndices {
			if allowed == idx {
				return idx, true
			}
		}
		return 0, false
	}
	return 0, false
}
