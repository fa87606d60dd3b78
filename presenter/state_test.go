package presenter

import "testing"

const format = "\ngot\n%v\nwanted\n%v"

func TestStateCycleWrapsDoneToIdle(t *testing.T) {
	s := Done
	if got := s.next(); got != Idle {
		t.Errorf(format, got, Idle)
	}
}

func TestStateCycleAdvancesInOrder(t *testing.T) {
	order := []State{Idle, Ready, Starting, Streaming, Repeating, Freezing, Done}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].next(); got != order[i+1] {
			t.Errorf(format, got, order[i+1])
		}
	}
}

func TestHasPassedIsStrictlyAfter(t *testing.T) {
	if Starting.HasPassed(Starting) {
		t.Errorf(format, true, false)
	}
	if !Streaming.HasPassed(Starting) {
		t.Errorf(format, false, true)
	}
	if Ready.HasPassed(Streaming) {
		t.Errorf(format, true, false)
	}
}

func TestStateStringNamesEveryState(t *testing.T) {
	for _, s := range []State{Idle, Ready, Starting, Streaming, Repeating, Freezing, Done} {
		if got := s.String(); got == "unknown" {
			t.Errorf(format, got, "a named state")
		}
	}
	if got := State(99).String(); got != "unknown" {
		t.Errorf(format, got, "unknown")
	}
}
