package presenter

import (
	"testing"

	"github.com/legoisland/sceneengine/action"
)

func tickUntilEnded(t *testing.T, check func() bool, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if check() {
			return
		}
	}
	t.Fatalf("composite did not end within %d steps", maxSteps)
}

func TestParallelPresenterFiresOnEndOnceAllChildrenDone(t *testing.T) {
	c1 := action.NewStill(1, "a.stl")
	c1.SetDuration(50)
	c2 := action.NewStill(2, "b.stl")
	c2.SetDuration(150)

	parent := action.NewParallel(99, c1, c2)
	cp := NewParallelPresenter(parent)

	ended := 0
	cp.OnEnd = func(*action.Action) { ended++ }

	tickUntilEnded(t, func() bool {
		for _, child := range cp.Children {
			child.tickle(200)
		}
		return ended > 0
	}, 20)

	if ended != 1 {
		t.Errorf(format, ended, 1)
	}
}

func TestParallelPresenterHasTickleStatePassedRequiresAllChildren(t *testing.T) {
	c1 := action.NewStill(1, "a.stl")
	c1.SetDuration(50)
	c2 := action.NewStill(2, "b.stl")
	c2.SetDuration(50)
	parent := action.NewParallel(99, c1, c2)
	cp := NewParallelPresenter(parent)

	cp.Children[0].tickle(0) // only the first child advances to Ready.
	if cp.HasTickleStatePassed(Idle) {
		t.Errorf(format, true, false)
	}
	cp.Children[1].tickle(0)
	if !cp.HasTickleStatePassed(Idle) {
		t.Errorf(format, false, true)
	}
}

func TestSerialPresenterPromotesNextChildInOrder(t *testing.T) {
	c1 := action.NewStill(1, "a.stl")
	c1.SetDuration(50)
	c2 := action.NewStill(2, "b.stl")
	c2.SetDuration(50)
	parent := action.NewSerial(99, c1, c2)
	sp := NewSerialPresenter(parent)

	if sp.Active() != sp.Children[0] {
		t.Errorf(format, sp.Active(), sp.Children[0])
	}

	ended := 0
	sp.OnEnd = func(*action.Action) { ended++ }

	tickUntilEnded(t, func() bool {
		if active := sp.Active(); active != nil {
			active.tickle(200)
		}
		return sp.Active() == sp.Children[1]
	}, 20)

	tickUntilEnded(t, func() bool {
		if active := sp.Active(); active != nil {
			active.tickle(200)
		}
		return ended > 0
	}, 20)

	if ended != 1 {
		t.Errorf(format, ended, 1)
	}
	if sp.Active() != nil {
		t.Errorf(format, sp.Active(), nil)
	}
}

func TestSerialPresenterHasTickleStatePassedBeforeExhaustion(t *testing.T) {
	c1 := action.NewStill(1, "a.stl")
	c1.SetDuration(50)
	c2 := action.NewStill(2, "b.stl")
	c2.SetDuration(50)
	parent := action.NewSerial(99, c1, c2)
	sp := NewSerialPresenter(parent)

	if sp.HasTickleStatePassed(Idle) {
		t.Errorf(format, true, false)
	}
	sp.Children[0].tickle(0)
	if sp.HasTickleStatePassed(Idle) {
		t.Errorf(format, true, false)
	}
}
