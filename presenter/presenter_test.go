package presenter

import (
	"testing"

	"github.com/legoisland/sceneengine/action"
	"github.com/legoisland/sceneengine/math/lin"
	"github.com/legoisland/sceneengine/roi"
)

// driveToDone steps p through one full Idle->...->Done->Idle cycle using a
// synthetic dt, returning the sequence of states visited (excluding the
// starting Idle).
func driveToDone(p *Presenter, dt float32, maxSteps int) []State {
	var visited []State
	for i := 0; i < maxSteps; i++ {
		p.tickle(dt)
		visited = append(visited, p.State)
		if len(visited) >= 2 && visited[len(visited)-1] == Idle && visited[len(visited)-2] == Done {
			break
		}
	}
	return visited
}

func TestPresenterTickleCycleVisitsEveryState(t *testing.T) {
	a := action.NewStill(1, "still.stl")
	a.SetDuration(100)
	p := New(a)

	visited := driveToDone(p, 200, 10)
	want := []State{Ready, Starting, Streaming, Repeating, Freezing, Done, Idle}
	if len(visited) != len(want) {
		t.Fatalf(format, visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf(format, visited, want)
			break
		}
	}
}

func TestPresenterNotifyActionFiresOnceAtDone(t *testing.T) {
	a := action.NewStill(1, "still.stl")
	a.SetDuration(100)
	p := New(a)

	notified := 0
	p.NotifyAction = func(*action.Action) { notified++ }

	driveToDone(p, 200, 10)
	if notified != 1 {
		t.Errorf(format, notified, 1)
	}

	driveToDone(p, 200, 10)
	if notified != 2 {
		t.Errorf(format, notified, 2)
	}
}

func TestPresenterAppliesActionPlacementToROIOnStart(t *testing.T) {
	a := action.NewStill(1, "still.stl")
	a.SetDuration(100)
	a.Location = lin.V3{X: 1, Y: 2, Z: 3}
	a.Direction = lin.V3{X: 0, Y: 0, Z: 1}
	a.Up = lin.V3{X: 0, Y: 1, Z: 0}

	p := New(a)
	p.ROI = roi.NewOrientableROI("prop", lin.Sphere{Center: lin.NewV3(), Radius: 1})

	p.tickle(0) // Idle -> Ready
	loc := p.ROI.LocalToWorld().Loc
	if loc.X != 0 || loc.Y != 0 || loc.Z != 0 {
		t.Errorf(format, *loc, "origin before Starting")
	}

	p.tickle(0) // Ready -> Starting, placement applied here
	loc = p.ROI.LocalToWorld().Loc
	if loc.X != 1 || loc.Y != 2 || loc.Z != 3 {
		t.Errorf(format, *loc, lin.V3{X: 1, Y: 2, Z: 3})
	}
}

func TestPresenterSkipsPlacementWhenActionHasNoLocation(t *testing.T) {
	a := action.NewStill(1, "still.stl")
	a.SetDuration(100)

	p := New(a)
	p.ROI = roi.NewOrientableROI("prop", lin.Sphere{Center: lin.NewV3(), Radius: 1})

	p.tickle(0) // Idle -> Ready
	p.tickle(0) // Ready -> Starting
	loc := p.ROI.LocalToWorld().Loc
	if loc.X != 0 || loc.Y != 0 || loc.Z != 0 {
		t.Errorf(format, *loc, "origin when action carries no placement")
	}
}

func TestHasTickleStatePassedTracksCurrentState(t *testing.T) {
	a := action.NewStill(1, "still.stl")
	a.SetDuration(100)
	p := New(a)

	if p.HasTickleStatePassed(Idle) {
		t.Errorf(format, true, false)
	}
	p.tickle(0)
	if !p.HasTickleStatePassed(Idle) {
		t.Errorf(format, false, true)
	}
	if p.HasTickleStatePassed(Ready) {
		t.Errorf(format, true, false)
	}
}
