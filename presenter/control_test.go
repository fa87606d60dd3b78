package presenter

import (
	"testing"

	"github.com/legoisland/sceneengine/action"
)

func twoChildActions() []*action.Action {
	return []*action.Action{
		action.NewStill(1, "a.stl"),
		action.NewStill(2, "b.stl"),
	}
}

func TestControlToggleFlipsBetweenZeroAndOne(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlToggle)

	if !cp.HandleClick(0, 0) {
		t.Fatalf(format, false, true)
	}
	if cp.Selected != 1 {
		t.Errorf(format, cp.Selected, 1)
	}
	if !cp.HandleClick(0, 0) {
		t.Fatalf(format, false, true)
	}
	if cp.Selected != 0 {
		t.Errorf(format, cp.Selected, 0)
	}
}

func TestControlGridResolvesRowMajorIndex(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlGrid)
	cp.Columns, cp.Rows = 2, 1

	if !cp.HandleClick(1, 0) {
		t.Fatalf(format, false, true)
	}
	if cp.Selected != 1 {
		t.Errorf(format, cp.Selected, 1)
	}
}

func TestControlGridRejectsOutOfBoundsClick(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlGrid)
	cp.Columns, cp.Rows = 2, 1

	if cp.HandleClick(5, 5) {
		t.Errorf(format, true, false)
	}
	if cp.Selected != 0 {
		t.Errorf(format, cp.Selected, 0)
	}
}

func TestControlMapAcceptsOnlyAllowedIndices(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlMap)
	cp.AllowedIndices = []int{1}
	cp.PaletteIndexAt = func(x, y int) int { return x }

	if cp.HandleClick(0, 0) {
		t.Errorf(format, true, false)
	}
	if cp.Selected != 0 {
		t.Errorf(format, cp.Selected, 0)
	}

	if !cp.HandleClick(1, 0) {
		t.Fatalf(format, false, true)
	}
	if cp.Selected != 1 {
		t.Errorf(format, cp.Selected, 1)
	}
}

func TestControlNotifyActionFiresOnSelectionChange(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlToggle)
	var notified *action.Action
	cp.NotifyAction = func(a *action.Action) { notified = a }

	cp.HandleClick(0, 0)
	if notified != cp.Children[1].Action {
		t.Errorf(format, notified, cp.Children[1].Action)
	}
}

func TestControlHandleClickIsNoOpWhenSelectionUnchanged(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlGrid)
	cp.Columns, cp.Rows = 2, 1
	cp.Selected = 0

	calls := 0
	cp.NotifyAction = func(*action.Action) { calls++ }

	if !cp.HandleClick(0, 0) {
		t.Fatalf(format, false, true)
	}
	if calls != 0 {
		t.Errorf(format, calls, 0)
	}
}

func TestControlTickAdvancesOnlySelectedChild(t *testing.T) {
	cp := NewControlPresenter(action.New(0), twoChildActions(), ControlToggle)
	cp.Tick()
	if cp.Children[0].State == Idle {
		t.Errorf(format, cp.Children[0].State, "not idle")
	}
	if cp.Children[1].State != Idle {
		t.Errorf(format, cp.Children[1].State, Idle)
	}
}
