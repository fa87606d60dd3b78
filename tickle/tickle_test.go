package tickle

import "testing"

type counter struct{ n int }

func (c *counter) Tick() { c.n++ }

func TestGetIntervalUnknown(t *testing.T) {
	m := &Manager{}
	c := &counter{}
	if got := m.GetInterval(c); got != Unknown {
		t.Errorf(format, got, Unknown)
	}
}

func TestRegisterDoesNotTickSamePass(t *testing.T) {
	m := &Manager{}
	c := &counter{}
	m.Register(c, 0)
	if c.n != 0 {
		t.Errorf(format, c.n, 0)
	}
	m.Advance(0)
	if c.n != 1 {
		t.Errorf(format, c.n, 1)
	}
}

func TestReRegisterIsNoop(t *testing.T) {
	m := &Manager{}
	c := &counter{}
	m.Register(c, 10)
	m.Register(c, 999)
	if got := m.GetInterval(c); got != 10 {
		t.Errorf(format, got, 10)
	}
}

func TestIntervalGatesTicks(t *testing.T) {
	m := &Manager{}
	c := &counter{}
	m.Register(c, 100)
	m.Advance(0) // ticks once, lastUpdate=0
	m.Advance(50)
	if c.n != 1 {
		t.Errorf(format, c.n, 1)
	}
	m.Advance(100)
	if c.n != 2 {
		t.Errorf(format, c.n, 2)
	}
}

func TestUnregisterRemovesOnNextPass(t *testing.T) {
	m := &Manager{}
	c := &counter{}
	m.Register(c, 0)
	m.Advance(0)
	m.Unregister(c)
	m.Advance(1)
	if c.n != 1 {
		t.Errorf(format, c.n, 1)
	}
	if got := m.GetInterval(c); got != Unknown {
		t.Errorf(format, got, Unknown)
	}
}

const format = "\ngot\n%v\nwanted\n%v"
